// Package main is the entry point for the crickstatx CLI, which answers
// player, comparison and leaderboard queries over cricket statistics.
package main

import "github.com/AduSharma/CrickStatX/cmd"

func main() {
	cmd.Execute()
}
