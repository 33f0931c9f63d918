package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/filter"
	"github.com/AduSharma/CrickStatX/internal/ranker"
	"github.com/AduSharma/CrickStatX/internal/service"
	"github.com/AduSharma/CrickStatX/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Load the dataset once and query it interactively. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	db, err := openMirror(svc)
	if err != nil {
		return err
	}
	defer db.Close()

	cGreeting.Println("crickstatx shell")
	cMuted.Printf("%d players loaded from %s. type 'help' or 'exit'\n", len(svc.Players()), dataDir)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("crickstatx")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if cmd == "exit" || cmd == "quit" {
			return nil
		}
		if err := shellDispatch(svc, db, cmd, rest); err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return nil
}

func shellDispatch(svc *service.Service, db *storage.DB, cmd, rest string) error {
	out := os.Stdout
	switch cmd {
	case "help":
		shellHelp()
	case "profile", "analyze", "tags":
		if rest == "" {
			cError.Fprintf(os.Stderr, "usage: %s <player name>\n", cmd)
			return nil
		}
		switch cmd {
		case "profile":
			return queryProfile(out, svc, rest)
		case "analyze":
			return queryAnalyze(out, svc, rest)
		default:
			return queryTags(out, svc, rest)
		}
	case "compare":
		if rest == "" {
			cError.Fprintln(os.Stderr, "usage: compare <player>, <player>")
			return nil
		}
		return queryCompare(out, svc, []string{rest})
	case "top":
		role, format, limit, ok := parseTopArgs(strings.Fields(rest))
		if !ok {
			cError.Fprintln(os.Stderr, "usage: top <role> [format] [limit]")
			return nil
		}
		return queryTop(out, svc, format, role, limit)
	case "filter":
		q, ok := parseFilterArgs(strings.Fields(rest))
		if !ok {
			cError.Fprintln(os.Stderr, "usage: filter <team> [era=1990s] [format=odi] [sort=runs|wkts|st]")
			return nil
		}
		return queryFilter(out, svc, q)
	case "players":
		return listPlayers(out, svc)
	case "files":
		return listFiles(out, svc, db)
	case "sql":
		if rest == "" {
			cError.Fprintln(os.Stderr, "usage: sql <query>")
			return nil
		}
		return querySQL(out, db, rest)
	default:
		cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
	}
	return nil
}

// parseTopArgs reads "<role> [format] [limit]".
func parseTopArgs(args []string) (role, format string, limit int, ok bool) {
	if len(args) == 0 || len(args) > 3 {
		return "", "", 0, false
	}
	role, format, limit = args[0], "odi", ranker.DefaultLimit
	if len(args) > 1 {
		format = args[1]
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n <= 0 {
			return "", "", 0, false
		}
		limit = n
	}
	return role, format, limit, true
}

// parseFilterArgs reads a team name followed by optional key=value options.
func parseFilterArgs(args []string) (filter.Query, bool) {
	var q filter.Query
	var team []string
	for _, a := range args {
		k, v, found := strings.Cut(a, "=")
		if !found {
			team = append(team, a)
			continue
		}
		switch strings.ToLower(k) {
		case "era":
			q.Era = v
		case "format":
			q.Format = v
		case "sort", "sort_by":
			q.SortBy = v
		default:
			return q, false
		}
	}
	q.Team = strings.Join(team, " ")
	return q, q.Team != ""
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"profile <name>", "raw matched rows for a player"},
		{"analyze <name>", "career narrative per matched player"},
		{"tags <name>", "role and best-format tags"},
		{"compare <name>, <name>", "head-to-head comparison"},
		{"top <role> [format] [limit]", "leaderboard (batsman, bowler, wk, allrounder)"},
		{"filter <team> [era=] [format=] [sort=]", "players of a team"},
		{"players", "every distinct player name"},
		{"files", "loaded files and their SQL tables"},
		{"sql <query>", "raw SQL over the in-memory copy"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-42s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}
