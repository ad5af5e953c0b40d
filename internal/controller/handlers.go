package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/studybuddy/internal/model"
)

func (c *CLI) cmdCreateProfile(ctx context.Context, args map[string]string) {
	name, okName := args["--name"]
	email, okEmail := args["--email"]
	if !okName || !okEmail {
		fmt.Fprintln(c.out, "Usage: create_profile --name <str> --email <str> [--passcode <str>]")
		return
	}

	id, err := c.profiles.CreateProfile(ctx, name, email, args["--passcode"])
	if err != nil {
		c.printError(err)
		return
	}

	c.currentUser = id
	fmt.Fprintf(c.out, "Profile created: id=%d\n", id)
}

func (c *CLI) cmdLogin(ctx context.Context, args map[string]string) {
	email, ok := args["--email"]
	if !ok {
		fmt.Fprintln(c.out, "Usage: login --email <str> [--passcode <str>]")
		return
	}

	id, err := c.profiles.Login(ctx, email, args["--passcode"])
	if err != nil {
		c.printError(err)
		return
	}

	c.currentUser = id
	student, _ := c.profiles.Get(ctx, id)
	fmt.Fprintf(c.out, "Logged in as id=%d (%s)\n", id, student.Name)
}

func (c *CLI) cmdWhoami(ctx context.Context) {
	if !c.requireLoggedIn() {
		return
	}
	student, err := c.profiles.Get(ctx, c.currentUser)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Current user: id=%d name=%s email=%s\n", student.ID, student.Name, student.Email)
}

func (c *CLI) cmdEditProfile(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}

	any := false
	if name, ok := args["--name"]; ok {
		if err := c.profiles.EditName(ctx, c.currentUser, name); err != nil {
			c.printError(err)
		} else {
			any = true
		}
	}
	if email, ok := args["--email"]; ok {
		if err := c.profiles.EditEmail(ctx, c.currentUser, email); err != nil {
			c.printError(err)
		} else {
			any = true
		}
	}
	if !any {
		fmt.Fprintln(c.out, "Nothing to update.")
	}
}

func (c *CLI) cmdAddCourse(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	code, ok := args["--code"]
	if !ok {
		fmt.Fprintln(c.out, "Usage: add_course --code <DEPT NUM>")
		return
	}
	if err := c.courses.AddCourse(ctx, c.currentUser, code); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Course added.")
}

func (c *CLI) cmdRemoveCourse(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	code, ok := args["--code"]
	if !ok {
		fmt.Fprintln(c.out, "Usage: remove_course --code <DEPT NUM>")
		return
	}
	if err := c.courses.RemoveCourse(ctx, c.currentUser, code); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Course removed.")
}

func (c *CLI) cmdListCourses(ctx context.Context) {
	if !c.requireLoggedIn() {
		return
	}
	list := c.courses.ListCourses(ctx, c.currentUser)
	if len(list) == 0 {
		fmt.Fprintln(c.out, "(no courses)")
		return
	}
	for _, code := range list {
		fmt.Fprintln(c.out, code)
	}
}

func (c *CLI) cmdAddAvailability(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	day, okDay := atoiFlag(args, "--day")
	start, okStart := atoiFlag(args, "--start")
	end, okEnd := atoiFlag(args, "--end")
	if !okDay || !okStart || !okEnd {
		fmt.Fprintln(c.out, "Usage: add_availability --day <0..6> --start <0..23> --end <1..24>")
		return
	}
	if err := c.availability.AddSlot(ctx, c.currentUser, day, start, end); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Availability added/merged.")
}

func (c *CLI) cmdRemoveAvailability(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	day, okDay := atoiFlag(args, "--day")
	start, okStart := atoiFlag(args, "--start")
	end, okEnd := atoiFlag(args, "--end")
	if !okDay || !okStart || !okEnd {
		fmt.Fprintln(c.out, "Usage: remove_availability --day <0..6> --start <..> --end <..>")
		return
	}
	removed, err := c.availability.RemoveSlotExact(ctx, c.currentUser, day, start, end)
	if err != nil {
		c.printError(err)
		return
	}
	if !removed {
		fmt.Fprintln(c.out, "No matching slot found")
		return
	}
	fmt.Fprintln(c.out, "Availability removed.")
}

func (c *CLI) cmdListAvailability(ctx context.Context) {
	if !c.requireLoggedIn() {
		return
	}
	slots := c.availability.ListSlots(ctx, c.currentUser)
	if len(slots) == 0 {
		fmt.Fprintln(c.out, "(no availability)")
		return
	}
	for _, a := range slots {
		fmt.Fprintf(c.out, "Day %d: %d-%d\n", a.Day, a.Start, a.End)
	}
}

func (c *CLI) cmdSearchMatches(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	course, ok := args["--course"]
	if !ok {
		fmt.Fprintln(c.out, "Usage: search_matches --course <DEPT NUM>")
		return
	}

	matches, err := c.matches.SuggestMatches(ctx, c.currentUser, course)
	if err != nil {
		c.printError(err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "No matches found.")
		return
	}

	for _, m := range matches {
		var parts []string
		for _, ov := range m.Overlaps {
			var hours []string
			for _, h := range ov.Hours {
				hours = append(hours, strconv.Itoa(h))
			}
			parts = append(parts, fmt.Sprintf("Day %d [%s]", ov.Day, strings.Join(hours, ",")))
		}
		fmt.Fprintf(c.out, "#%d %s: %s\n", m.ClassmateID, m.ClassmateName, strings.Join(parts, " | "))
	}
}

func (c *CLI) cmdScheduleSession(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	course, okCourse := args["--course"]
	day, okDay := atoiFlag(args, "--day")
	start, okStart := atoiFlag(args, "--start")
	invite, okInvite := args["--invite"]
	invitees, okIDs := parseIDList(invite)
	if !okCourse || !okDay || !okStart || !okInvite || !okIDs {
		fmt.Fprintln(c.out, "Usage: schedule_session --course <DEPT NUM> --day <0..6> --start <0..23> --invite <id,id,..>")
		return
	}

	id, err := c.sessions.ScheduleSession(ctx, c.currentUser, course, day, start, invitees)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Session %d PROPOSED. Awaiting confirmations.\n", id)
}

func (c *CLI) cmdConfirmSession(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	id, ok := atoiFlag(args, "--id")
	if !ok {
		fmt.Fprintln(c.out, "Usage: confirm_session --id <session_id>")
		return
	}
	if err := c.sessions.ConfirmSession(ctx, c.currentUser, id); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Confirmed.")
}

func (c *CLI) cmdCancelSession(ctx context.Context, args map[string]string) {
	if !c.requireLoggedIn() {
		return
	}
	id, ok := atoiFlag(args, "--id")
	if !ok {
		fmt.Fprintln(c.out, "Usage: cancel_session --id <session_id> [--reason <text>]")
		return
	}
	reason, ok := args["--reason"]
	if !ok || reason == "" {
		reason = "No reason provided"
	}
	if err := c.sessions.CancelSession(ctx, c.currentUser, id, reason); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Cancelled.")
}

func (c *CLI) cmdListSessions(ctx context.Context) {
	if !c.requireLoggedIn() {
		return
	}
	list := c.sessions.ListSessionsFor(ctx, c.currentUser)
	if len(list) == 0 {
		fmt.Fprintln(c.out, "(no sessions)")
		return
	}

	statuses := []model.SessionStatus{
		model.SessionStatusProposed,
		model.SessionStatusConfirmed,
		model.SessionStatusCancelled,
	}
	for _, status := range statuses {
		fmt.Fprintf(c.out, "%s:\n", status)
		for _, sess := range list {
			if sess.Status != status {
				continue
			}
			fmt.Fprintf(c.out, "  [%d] %s Day %d %d:00-%d:00 Organizer:%d Participants:%s",
				sess.ID, sess.CourseCode, sess.Day, sess.Start, sess.Start+1,
				sess.OrganizerID, c.formatParticipants(ctx, sess.ID))
			if sess.Status == model.SessionStatusCancelled && sess.CancelReason != "" {
				fmt.Fprintf(c.out, " Reason:%s", sess.CancelReason)
			}
			fmt.Fprintln(c.out)
		}
	}
}

func (c *CLI) formatParticipants(ctx context.Context, sessionID int) string {
	var parts []string
	for _, p := range c.sessions.ParticipantsFor(ctx, sessionID) {
		flag := "N"
		if p.Confirmed {
			flag = "Y"
		}
		parts = append(parts, fmt.Sprintf("%d(%s)", p.StudentID, flag))
	}
	return strings.Join(parts, ",")
}

func (c *CLI) cmdListInvitations(ctx context.Context) {
	if !c.requireLoggedIn() {
		return
	}
	list := c.sessions.ListPendingInvitationsFor(ctx, c.currentUser)
	if len(list) == 0 {
		fmt.Fprintln(c.out, "(no pending invitations)")
		return
	}
	for _, sess := range list {
		fmt.Fprintf(c.out, "  [%d] %s Day %d %d:00-%d:00\n",
			sess.ID, sess.CourseCode, sess.Day, sess.Start, sess.Start+1)
	}
}
