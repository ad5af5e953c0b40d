package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Freeeeeet/studybuddy/internal/service"
	"go.uber.org/zap"
)

// CLI — интерактивная оболочка: одна команда за раз, каждая выполняется
// до конца вместе с записью на диск. Текущий пользователь — состояние
// оболочки, в сервисы он всегда передаётся явным параметром.
type CLI struct {
	profiles     *service.ProfileService
	courses      *service.CourseService
	availability *service.AvailabilityService
	matches      *service.MatchService
	sessions     *service.SessionService
	logger       *zap.Logger

	in  io.Reader
	out io.Writer

	currentUser int // -1 пока никто не вошёл
}

func NewCLI(
	profiles *service.ProfileService,
	courses *service.CourseService,
	availability *service.AvailabilityService,
	matches *service.MatchService,
	sessions *service.SessionService,
	logger *zap.Logger,
) *CLI {
	return &CLI{
		profiles:     profiles,
		courses:      courses,
		availability: availability,
		matches:      matches,
		sessions:     sessions,
		logger:       logger,
		in:           os.Stdin,
		out:          os.Stdout,
		currentUser:  -1,
	}
}

// Run читает команды построчно до EOF или команды exit.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Study Buddy CLI — type 'help' for commands.")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !c.handleCommand(ctx, line) {
			return nil
		}
	}

	return scanner.Err()
}

// handleCommand возвращает false только для exit.
func (c *CLI) handleCommand(ctx context.Context, line string) bool {
	tokens := splitTokensQuoted(line)
	if len(tokens) == 0 {
		return true
	}
	cmd := tokens[0]
	args := parseFlags(tokens[1:])

	switch cmd {
	case "help":
		c.printHelp()
	case "exit":
		fmt.Fprintln(c.out, "Goodbye")
		return false
	case "create_profile":
		c.cmdCreateProfile(ctx, args)
	case "login":
		c.cmdLogin(ctx, args)
	case "whoami":
		c.cmdWhoami(ctx)
	case "edit_profile":
		c.cmdEditProfile(ctx, args)
	case "add_course":
		c.cmdAddCourse(ctx, args)
	case "remove_course":
		c.cmdRemoveCourse(ctx, args)
	case "list_courses":
		c.cmdListCourses(ctx)
	case "add_availability":
		c.cmdAddAvailability(ctx, args)
	case "remove_availability":
		c.cmdRemoveAvailability(ctx, args)
	case "list_availability":
		c.cmdListAvailability(ctx)
	case "search_matches":
		c.cmdSearchMatches(ctx, args)
	case "schedule_session":
		c.cmdScheduleSession(ctx, args)
	case "confirm_session":
		c.cmdConfirmSession(ctx, args)
	case "cancel_session":
		c.cmdCancelSession(ctx, args)
	case "list_sessions":
		c.cmdListSessions(ctx)
	case "list_invitations":
		c.cmdListInvitations(ctx)
	default:
		fmt.Fprintln(c.out, "Unknown command. Type 'help'.")
	}

	return true
}

func (c *CLI) printHelp() {
	fmt.Fprint(c.out, "Commands:\n"+
		"  create_profile --name <str> --email <str> [--passcode <str>]\n"+
		"  login --email <str> [--passcode <str>]\n"+
		"  whoami\n"+
		"  edit_profile [--name <str>] [--email <str>]\n"+
		"  add_course --code <DEPT NUM>\n"+
		"  remove_course --code <DEPT NUM>\n"+
		"  list_courses\n"+
		"  add_availability --day <0..6> --start <0..23> --end <1..24>\n"+
		"  remove_availability --day <0..6> --start <..> --end <..>\n"+
		"  list_availability\n"+
		"  search_matches --course <DEPT NUM>\n"+
		"  schedule_session --course <DEPT NUM> --day <0..6> --start <0..23> --invite <id,id,..>\n"+
		"  confirm_session --id <session_id>\n"+
		"  cancel_session --id <session_id> [--reason <text>]\n"+
		"  list_sessions\n"+
		"  list_invitations\n"+
		"  help | exit\n")
}

func (c *CLI) requireLoggedIn() bool {
	if c.currentUser < 0 {
		fmt.Fprintln(c.out, "[ERROR] Not logged in. Use 'login --email <str>' or create_profile.")
		return false
	}
	return true
}

func (c *CLI) printError(err error) {
	fmt.Fprintf(c.out, "[ERROR] %s\n", err)
}
