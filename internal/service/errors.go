package service

import "errors"

// Ошибки бизнес-логики — стабильные токены, пригодные для прямого вывода
// в CLI. Error() возвращает сам токен, обработчики печатают его как есть
// и ветвятся через errors.Is.
var (
	// Профиль
	ErrBadEmail         = errors.New("BAD_EMAIL")
	ErrDupEmail         = errors.New("DUP_EMAIL")
	ErrNoStudent        = errors.New("NO_STUDENT")
	ErrNoSuchUser       = errors.New("NO_SUCH_USER")
	ErrPasscodeRequired = errors.New("PASSCODE_REQUIRED")
	ErrBadPasscode      = errors.New("BAD_PASSCODE")

	// Курсы
	ErrBadCourse         = errors.New("BAD_COURSE")
	ErrDupCourse         = errors.New("DUP_COURSE")
	ErrSessionsExist     = errors.New("SESSIONS_EXIST")
	ErrCourseNotEnrolled = errors.New("COURSE_NOT_ENROLLED")
	ErrNotEnrolled       = errors.New("NOT_ENROLLED")

	// Доступность
	ErrBadRange = errors.New("BAD_RANGE")

	// Сессии
	ErrBadTime          = errors.New("BAD_TIME")
	ErrNotEnrolledOrg   = errors.New("NOT_ENROLLED_ORG")
	ErrOutsideAvailOrg  = errors.New("OUTSIDE_AVAIL_ORG")
	ErrOrgConflict      = errors.New("ORG_CONFLICT")
	ErrInvID            = errors.New("INV_ID")
	ErrInvNotEnrolled   = errors.New("INV_NOT_ENROLLED")
	ErrNoInvitees       = errors.New("NO_INVITEES")
	ErrNoSession        = errors.New("NO_SESSION")
	ErrSessionCancelled = errors.New("CANCELLED")
	ErrNotParticipant   = errors.New("NOT_PARTICIPANT")
	ErrTimeConflict     = errors.New("TIME_CONFLICT")
	ErrOutsideAvail     = errors.New("OUTSIDE_AVAIL")
)
