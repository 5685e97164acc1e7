package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/capek-safety/veritree/pkg/config"
	"github.com/capek-safety/veritree/pkg/faulttree"
	"github.com/capek-safety/veritree/pkg/logging"
	"github.com/capek-safety/veritree/pkg/metrics"
	"github.com/capek-safety/veritree/pkg/project"
	"github.com/capek-safety/veritree/pkg/report"
)

type CLI struct {
	project *project.Project
	gen     *report.Generator
	metrics *metrics.Registry
	logger  logging.Logger
	scanner *bufio.Scanner
}

func main() {
	projectPath := flag.String("project", "", "Project archive to open (.vtpj)")
	configPath := flag.String("config", "", "Configuration file (YAML)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("❌ Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	printBanner()

	cli := &CLI{
		gen:     report.NewGenerator(nil),
		metrics: metrics.DefaultRegistry(),
		logger:  logger,
		scanner: bufio.NewScanner(os.Stdin),
	}

	if *projectPath != "" {
		cli.loadProject(*projectPath)
	}

	fmt.Println("Type 'help' for available commands, 'exit' to quit")
	fmt.Println()

	cli.run()
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════╗
║                                               ║
║   VeriTree Safety Analysis Workbench v1.0     ║
║   Fault trees · Cut sets · GSN arguments      ║
║                                               ║
╚═══════════════════════════════════════════════╝
`
	fmt.Println(banner)
}

func (cli *CLI) run() {
	for {
		fmt.Print("veritree> ")

		if !cli.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(cli.scanner.Text())
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("👋 Goodbye!")
			break
		}

		cli.executeCommand(input)
		fmt.Println()
	}
}

func (cli *CLI) executeCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])

	switch command {
	case "help":
		cli.showHelp()

	case "load":
		if len(parts) < 2 {
			fmt.Println("Usage: load <path>")
			return
		}
		cli.loadProject(parts[1])

	case "save":
		if len(parts) < 2 {
			fmt.Println("Usage: save <path>")
			return
		}
		cli.saveProject(parts[1])

	case "tops", "ls":
		cli.listTopEvents()

	case "node", "n":
		if id, ok := cli.parseID(parts, "node <id>"); ok {
			cli.showNode(id)
		}

	case "cutsets", "cs":
		if id, ok := cli.parseID(parts, "cutsets <id>"); ok {
			cli.showCutSets(id)
		}

	case "common-causes", "cc":
		if id, ok := cli.parseID(parts, "common-causes <id>"); ok {
			cli.showCommonCauses(id)
		}

	case "argue", "a":
		if id, ok := cli.parseID(parts, "argue <id>"); ok {
			cli.showArgumentation(id)
		}

	case "tree", "t":
		if id, ok := cli.parseID(parts, "tree <id>"); ok {
			cli.showHierarchy(id)
		}

	case "summary":
		if id, ok := cli.parseID(parts, "summary <id>"); ok {
			cli.showSummary(id)
		}

	case "check":
		cli.checkModel()

	case "export-csv":
		if len(parts) < 3 {
			fmt.Println("Usage: export-csv <id> <path>")
			return
		}
		raw, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			fmt.Println("❌ Node id must be a number")
			return
		}
		cli.exportCutSetsCSV(faulttree.NodeID(raw), parts[2])

	case "clear":
		fmt.Print("\033[H\033[2J")

	default:
		fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n", command)
	}
}

func (cli *CLI) parseID(parts []string, usage string) (faulttree.NodeID, bool) {
	if len(parts) < 2 {
		fmt.Printf("Usage: %s\n", usage)
		return 0, false
	}
	raw, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		fmt.Println("❌ Node id must be a number")
		return 0, false
	}
	return faulttree.NodeID(raw), true
}

func (cli *CLI) requireProject() bool {
	if cli.project == nil {
		fmt.Println("❌ No project loaded (use 'load <path>')")
		return false
	}
	return true
}

func (cli *CLI) loadProject(path string) {
	fmt.Printf("📂 Opening project %s...\n", path)
	start := time.Now()
	p, err := project.LoadFile(path)
	if err != nil {
		cli.metrics.RecordProjectLoad("error", 0)
		cli.logger.Error("project load failed", logging.Path(path), logging.Error(err))
		fmt.Printf("❌ Failed to load project: %v\n", err)
		return
	}
	cli.project = p
	cli.metrics.RecordProjectLoad("ok", 0)
	cli.metrics.ModelNodesTotal.Set(float64(p.Tree.Len()))
	cli.logger.Info("project loaded",
		logging.ProjectName(p.Name),
		logging.Count(p.Tree.Len()),
		logging.Latency(time.Since(start)))
	fmt.Printf("✅ Project %q loaded\n", p.Name)
	fmt.Printf("   Nodes: %d\n", p.Tree.Len())
	fmt.Printf("   Diagrams: %d\n", len(p.Diagrams))
}

func (cli *CLI) saveProject(path string) {
	if !cli.requireProject() {
		return
	}
	if err := project.SaveFile(path, cli.project); err != nil {
		cli.metrics.RecordProjectSave("error", 0)
		fmt.Printf("❌ Failed to save project: %v\n", err)
		return
	}
	cli.metrics.RecordProjectSave("ok", 0)
	fmt.Printf("💾 Project saved to %s\n", path)
}

func (cli *CLI) listTopEvents() {
	if !cli.requireProject() {
		return
	}
	roots := cli.project.Tree.Roots()
	if len(roots) == 0 {
		fmt.Println("No top events in the model")
		return
	}
	fmt.Printf("Top events (%d):\n", len(roots))
	for _, r := range roots {
		fmt.Printf("  [%d] %s (%s)\n", r.ID, r.Name(), r.Type)
	}
}

func (cli *CLI) showNode(id faulttree.NodeID) {
	if !cli.requireProject() {
		return
	}
	n, err := cli.project.Tree.GetNode(id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Printf("%s\n", n.Name())
	fmt.Printf("  Type: %s\n", n.Type)
	if n.Type.IsGateType() {
		fmt.Printf("  Gate: %s\n", n.GateType)
	}
	if n.QuantValue != nil {
		fmt.Printf("  Quantitative value: %.2f\n", *n.QuantValue)
	}
	if n.Description != "" {
		fmt.Printf("  Description: %s\n", n.Description)
	}
	if !n.IsPrimaryInstance {
		fmt.Printf("  Clone of node %d\n", n.Original)
	}
	fmt.Printf("  Children: %d, Parents: %d\n", len(n.Children), len(n.Parents))
}

func (cli *CLI) showCutSets(id faulttree.NodeID) {
	if !cli.requireProject() {
		return
	}
	start := time.Now()
	cutSets, err := cli.project.Tree.CutSets(id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	largest := 0
	for _, cs := range cutSets {
		if len(cs) > largest {
			largest = len(cs)
		}
	}
	cli.metrics.RecordCutSetRun(time.Since(start), len(cutSets), largest)

	fmt.Printf("Cut sets (%d):\n", len(cutSets))
	for i, cs := range cutSets {
		ids := cs.Sorted()
		names := make([]string, 0, len(ids))
		for _, cid := range ids {
			if n, err := cli.project.Tree.GetNode(cid); err == nil {
				names = append(names, n.Name())
			}
		}
		fmt.Printf("  %d. {%s}\n", i+1, strings.Join(names, ", "))
	}
}

func (cli *CLI) showCommonCauses(id faulttree.NodeID) {
	if !cli.requireProject() {
		return
	}
	start := time.Now()
	text, err := cli.project.Tree.CommonCauseReport(id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	causes, _ := cli.project.Tree.CommonCauses(id)
	cli.metrics.RecordCommonCauseRun(time.Since(start), len(causes))
	fmt.Println(text)
}

func (cli *CLI) showArgumentation(id faulttree.NodeID) {
	if !cli.requireProject() {
		return
	}
	text, err := cli.gen.Argumentation(cli.project.Tree, id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Println(text)
}

func (cli *CLI) showHierarchy(id faulttree.NodeID) {
	if !cli.requireProject() {
		return
	}
	text, err := cli.gen.HierarchicalArgumentation(cli.project.Tree, id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Print(text)
}

func (cli *CLI) showSummary(id faulttree.NodeID) {
	if !cli.requireProject() {
		return
	}
	text, err := cli.gen.TopEventSummary(cli.project.Tree, id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Println(text)
}

func (cli *CLI) checkModel() {
	if !cli.requireProject() {
		return
	}
	violations := cli.project.Tree.Validate(faulttree.DefaultConstraints()...)
	if len(violations) == 0 {
		fmt.Println("✅ Model satisfies all constraints")
		return
	}
	fmt.Printf("⚠️  %d violation(s):\n", len(violations))
	for _, v := range violations {
		cli.metrics.RecordViolation(v.Constraint, v.Severity.String())
		fmt.Printf("  [%s] node %d: %s\n", v.Severity, v.NodeID, v.Message)
	}
}

func (cli *CLI) exportCutSetsCSV(id faulttree.NodeID, path string) {
	if !cli.requireProject() {
		return
	}
	cutSets, err := cli.project.Tree.CutSets(id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("❌ Failed to create %s: %v\n", path, err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"cut_set", "node_id", "name", "type"}); err != nil {
		fmt.Printf("❌ Write failed: %v\n", err)
		return
	}
	for i, cs := range cutSets {
		for _, cid := range cs.Sorted() {
			n, err := cli.project.Tree.GetNode(cid)
			if err != nil {
				continue
			}
			record := []string{
				strconv.Itoa(i + 1),
				strconv.FormatUint(uint64(cid), 10),
				n.Name(),
				string(n.Type),
			}
			if err := w.Write(record); err != nil {
				fmt.Printf("❌ Write failed: %v\n", err)
				return
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Printf("❌ Write failed: %v\n", err)
		return
	}
	fmt.Printf("📄 Exported %d cut set(s) to %s\n", len(cutSets), path)
}

func (cli *CLI) showHelp() {
	help := `
📖 Available Commands:

📂 Project:
  load <path>            Open a project archive
  save <path>            Save the project archive
  tops                   List top events

🔍 Inspection:
  node <id>              Show node details (alias: n)
  tree <id>              Indented subtree view (alias: t)
  check                  Validate model constraints

📊 Analysis:
  cutsets <id>           Enumerate cut sets (alias: cs)
  common-causes <id>     Detect common causes (alias: cc)
  argue <id>             Full argumentation text (alias: a)
  summary <id>           One-line top event summary
  export-csv <id> <path> Export cut sets as CSV

🎮 Other:
  clear                  Clear screen
  help                   Show this help
  exit/quit              Exit`
	fmt.Println(help)
}
