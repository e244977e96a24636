package models

// Mode selects which checklist variant a user fills in for a given day.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeHaid   Mode = "haid"
)

// ParseMode maps unknown values to ModeNormal.
func ParseMode(s string) Mode {
	if s == string(ModeHaid) {
		return ModeHaid
	}
	return ModeNormal
}

// User represents a group member talking to the bot.
type User struct {
	TelegramID  int64   `db:"telegram_id"`
	FirstName   string  `db:"first_name"`
	Username    string  `db:"username"`
	DisplayName *string `db:"display_name"` // nil until set via "Nama: …"
	TeamHandler *bool   `db:"team_handler"` // nil until the user answers the role prompt
	CreatedAt   int64   `db:"created_at"`
}

// HasName reports whether the user finished registration.
func (u *User) HasName() bool {
	return u != nil && u.DisplayName != nil && *u.DisplayName != ""
}

// IsTeamHandler is false while the flag is still unset.
func (u *User) IsTeamHandler() bool {
	return u != nil && u.TeamHandler != nil && *u.TeamHandler
}

// ItemValue is the tri-state value of one checklist item for one day.
// The zero value means "marked not done"; an item absent from the day's
// record means "never touched". Both count as not completed.
type ItemValue struct {
	Done    bool   `db:"done"`
	Excused bool   `db:"excused"`
	Reason  string `db:"reason"`
}

// IsCompleted treats an accepted excuse the same as done. Progress
// percentages and the qisos/bonus amounts are both derived from this.
func (v ItemValue) IsCompleted() bool {
	return v.Done || v.Excused
}

// PendingExcuse is the single per-user slot waiting for a free-text
// reason. A new excuse request overwrites the previous slot.
type PendingExcuse struct {
	TelegramID int64  `db:"telegram_id"`
	ItemKey    string `db:"item_key"`
	Mode       Mode   `db:"mode"`
	Label      string `db:"label"`
	CreatedAt  int64  `db:"created_at"`
}
