// loomctl is an interactive terminal workspace for a Loomorro
// server: the same login/workspace flow as the web app, driven over
// the REST client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"loomorro/goal-api/client"
	"loomorro/goal-api/internal/canvas"
	"loomorro/goal-api/internal/layout"
	"loomorro/goal-api/internal/model"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
)

var (
	serverURL   = pflag.String("server", "http://localhost:3001", "Base URL of the Loomorro API")
	sessionPath = pflag.String("session", ".loomctl-session.json", "Path of the session file")
	themeName   = pflag.String("theme", "summer", "Canvas theme for SVG exports (summer or ocean)")
)

type shell struct {
	rl *readline.Instance
	c  *client.Client

	file     *model.File
	selected uint
}

func main() {
	pflag.Parse()

	rl, err := readline.New("loomorro> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	s := &shell{
		rl: rl,
		c:  client.New(*serverURL, client.NewFileStore(*sessionPath)),
	}

	fmt.Println("Welcome to Loomorro!")
	fmt.Println("Type 'help' for a list of commands or 'exit' to quit.")

	if s.c.Session().LoggedIn() {
		s.enterWorkspace()
	}

	for {
		s.updatePrompt()

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return
			}
			fmt.Println("Error reading input:", err)
			continue
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if args[0] == "exit" || args[0] == "quit" {
			return
		}

		s.dispatch(args[0], args[1:])
	}
}

func (s *shell) updatePrompt() {
	if !s.c.Session().LoggedIn() {
		s.rl.SetPrompt("loomorro> ")
		return
	}

	name := "?"
	if u, ok := s.c.Session().User(); ok {
		name = u.Username
	}

	file := "-"
	if s.file != nil {
		file = s.file.Name
	}

	s.rl.SetPrompt(fmt.Sprintf("%s@%s> ", name, file))
}

func (s *shell) dispatch(cmd string, args []string) {
	ctx := context.Background()

	if !s.c.Session().LoggedIn() {
		switch cmd {
		case "help":
			fmt.Println("register <email> <username>  create an account")
			fmt.Println("login <email>                sign in")
			fmt.Println("exit                         quit")
		case "register":
			s.register(ctx, args)
		case "login":
			s.login(ctx, args)
		default:
			fmt.Println("Please login first. Type 'help' for commands.")
		}
		return
	}

	switch cmd {
	case "help":
		s.help()
	case "profile":
		s.profile(ctx)
	case "logout":
		s.c.Logout()
		s.file = nil
		s.selected = 0
		fmt.Println("Logged out.")
	case "files":
		s.listFiles(ctx)
	case "use":
		s.useFile(ctx, args)
	case "newfile":
		s.newFile(ctx, args)
	case "renamefile":
		s.renameFile(ctx, args)
	case "rmfile":
		s.removeFile(ctx, args)
	case "add":
		s.addGoal(ctx, args, nil)
	case "sub":
		s.addSubgoal(ctx, args)
	case "select":
		s.selectGoal(ctx, args)
	case "show":
		s.showGoal(ctx, args)
	case "edit":
		s.editGoal(ctx, args)
	case "rm":
		s.removeGoal(ctx)
	case "tree":
		s.printTree(ctx)
	case "export":
		s.exportSVG(ctx, args)
	default:
		fmt.Println("Unknown command. Type 'help' for a list of commands.")
	}
}

func (s *shell) help() {
	fmt.Println("files                        list your files")
	fmt.Println("use <id>                     switch to a file")
	fmt.Println("newfile <name>               create a file")
	fmt.Println("renamefile <id> <name>       rename a file")
	fmt.Println("rmfile <id>                  delete a file and its goals")
	fmt.Println("add <title>                  add a root goal")
	fmt.Println("sub <title>                  add a goal under the selection")
	fmt.Println("select <id>                  select or deselect a goal")
	fmt.Println("show <id>                    show one goal")
	fmt.Println("edit <field> <value>         edit the selected goal (title, desc, status, priority)")
	fmt.Println("rm                           delete the selected goal and its subtree")
	fmt.Println("tree                         print the goal tree")
	fmt.Println("export <path>                write the canvas as SVG")
	fmt.Println("profile                      show who you are")
	fmt.Println("logout / exit")
}

func (s *shell) readPassword() (string, error) {
	pw, err := s.rl.ReadPassword("password: ")
	return string(pw), err
}

func (s *shell) register(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: register <email> <username>")
		return
	}

	pw, err := s.readPassword()
	if err != nil {
		return
	}

	u, err := s.c.Register(ctx, args[0], pw, args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Registered %s. You can login now.\n", u.Email)
}

func (s *shell) login(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: login <email>")
		return
	}

	pw, err := s.readPassword()
	if err != nil {
		return
	}

	u, err := s.c.Login(ctx, args[0], pw)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Welcome back, %s!\n", u.Username)
	s.enterWorkspace()
}

// enterWorkspace picks the first file, same as the web app does on
// load.
func (s *shell) enterWorkspace() {
	files, err := s.c.ListFiles(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	if len(files) > 0 {
		s.file = &files[0]
	}
}

func (s *shell) profile(ctx context.Context) {
	ident, err := s.c.Profile(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("user_id=%d email=%s\n", ident.UserID, ident.Email)
}

func (s *shell) listFiles(ctx context.Context) {
	files, err := s.c.ListFiles(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, f := range files {
		marker := "  "
		if s.file != nil && f.ID == s.file.ID {
			marker = "* "
		}
		fmt.Printf("%s[%d] %s\n", marker, f.ID, f.Name)
	}
}

func (s *shell) useFile(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: use <id>")
	if !ok {
		return
	}

	files, err := s.c.ListFiles(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := range files {
		if files[i].ID == id {
			s.file = &files[i]
			s.selected = 0
			fmt.Printf("Switched to %s.\n", files[i].Name)
			return
		}
	}

	fmt.Println("No such file.")
}

func (s *shell) newFile(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: newfile <name>")
		return
	}

	f, err := s.c.CreateFile(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Println(err)
		return
	}

	s.file = &f
	s.selected = 0
	fmt.Printf("Created file %s.\n", f.Name)
}

func (s *shell) renameFile(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: renamefile <id> <name>")
		return
	}

	id, ok := parseID(args[:1], "Usage: renamefile <id> <name>")
	if !ok {
		return
	}

	f, err := s.c.RenameFile(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		fmt.Println(err)
		return
	}

	if s.file != nil && s.file.ID == f.ID {
		s.file = &f
	}
	fmt.Printf("Renamed to %s.\n", f.Name)
}

func (s *shell) removeFile(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: rmfile <id>")
	if !ok {
		return
	}

	f, err := s.c.DeleteFile(ctx, id)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Deleted file %s.\n", f.Name)

	if s.file != nil && s.file.ID == f.ID {
		s.file = nil
		s.selected = 0
		s.enterWorkspace()
	}
}

func (s *shell) addGoal(ctx context.Context, args []string, parent *uint) {
	if len(args) == 0 {
		fmt.Println("Usage: add <title>")
		return
	}

	if s.file == nil {
		fmt.Println("Pick a file first with 'use'.")
		return
	}

	g, err := s.c.CreateGoal(ctx, client.CreateGoalInput{
		Title:    strings.Join(args, " "),
		ParentID: parent,
		FileID:   s.file.ID,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Created goal [%d] %s.\n", g.ID, g.Title)
}

func (s *shell) addSubgoal(ctx context.Context, args []string) {
	if s.selected == 0 {
		fmt.Println("Select a parent goal first with 'select'.")
		return
	}

	parent := s.selected
	s.addGoal(ctx, args, &parent)
}

func (s *shell) selectGoal(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: select <id>")
	if !ok {
		return
	}

	// Clicking the selected node again deselects it
	if s.selected == id {
		s.selected = 0
		fmt.Println("Selection cleared.")
		return
	}

	g, err := s.c.GetGoal(ctx, id)
	if err != nil {
		fmt.Println(err)
		return
	}

	s.selected = g.ID
	fmt.Printf("Selected [%d] %s.\n", g.ID, g.Title)
}

func (s *shell) showGoal(ctx context.Context, args []string) {
	id, ok := parseID(args, "Usage: show <id>")
	if !ok {
		return
	}

	g, err := s.c.GetGoal(ctx, id)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("[%d] %s\n", g.ID, g.Title)
	if g.Description != "" {
		fmt.Println("   ", g.Description)
	}
	fmt.Printf("    status=%s priority=%d", g.Status, g.Priority)
	if e := canvas.PriorityEmoji(g.Priority); e != "" {
		fmt.Printf(" %s", e)
	}
	fmt.Println()
}

func (s *shell) editGoal(ctx context.Context, args []string) {
	if s.selected == 0 {
		fmt.Println("Select a goal first with 'select'.")
		return
	}

	if len(args) < 2 {
		fmt.Println("Usage: edit <title|desc|status|priority> <value>")
		return
	}

	value := strings.Join(args[1:], " ")
	var in client.UpdateGoalInput

	switch args[0] {
	case "title":
		in.Title = &value
	case "desc":
		in.Description = &value
	case "status":
		in.Status = &value
	case "priority":
		p, err := strconv.Atoi(value)
		if err != nil {
			fmt.Println("Priority must be a number between 0 and 3.")
			return
		}
		in.Priority = &p
	default:
		fmt.Println("Unknown field. Use title, desc, status or priority.")
		return
	}

	g, err := s.c.UpdateGoal(ctx, s.selected, in)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Updated [%d] %s.\n", g.ID, g.Title)
}

func (s *shell) removeGoal(ctx context.Context) {
	if s.selected == 0 {
		fmt.Println("Select a goal first with 'select'.")
		return
	}

	g, err := s.c.DeleteGoal(ctx, s.selected)
	if err != nil {
		fmt.Println(err)
		return
	}

	s.selected = 0
	fmt.Printf("Deleted goal %s and its subgoals.\n", g.Title)
}

func (s *shell) printTree(ctx context.Context) {
	if s.file == nil {
		fmt.Println("Pick a file first with 'use'.")
		return
	}

	tree, err := s.c.GoalTree(ctx, s.file.ID)
	if err != nil {
		fmt.Println(err)
		return
	}

	if len(tree.Nodes) == 0 {
		fmt.Println("No goals yet. Add one with 'add'.")
		return
	}

	for _, n := range tree.Nodes {
		s.printNode(n, 0)
	}
}

func (s *shell) printNode(n *layout.Node, depth int) {
	marker := " "
	if n.ID == s.selected {
		marker = ">"
	}

	line := fmt.Sprintf("%s%s[%d] %s", marker, strings.Repeat("    ", depth), n.ID, n.Title)
	if e := canvas.PriorityEmoji(n.Priority); e != "" {
		line += " " + e
	}
	if n.Status != "active" {
		line += " (" + n.Status + ")"
	}

	fmt.Println(line)

	for _, child := range n.Children {
		s.printNode(child, depth+1)
	}
}

func (s *shell) exportSVG(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: export <path>")
		return
	}

	if s.file == nil {
		fmt.Println("Pick a file first with 'use'.")
		return
	}

	svg, err := s.c.GoalSVG(ctx, s.file.ID, *themeName, s.selected)
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := os.WriteFile(args[0], svg, 0o644); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Wrote %s.\n", args[0])
}

func parseID(args []string, usage string) (uint, bool) {
	if len(args) != 1 {
		fmt.Println(usage)
		return 0, false
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Println(usage)
		return 0, false
	}

	return uint(id), true
}
