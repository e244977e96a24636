package storage

import (
	"database/sql"
	"embed"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"tarbiyah-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// DB wraps the sqlite handle. All day-scoped operations work on "today"
// in the configured location (Asia/Jakarta in production); each write
// touches exactly one row, so concurrent updates to different item keys
// of the same user never clobber each other.
type DB struct {
	*sql.DB
	loc *time.Location
	now func() time.Time
}

func New(path string, loc *time.Location) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{DB: db, loc: loc, now: time.Now}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

func (d *DB) today() string {
	return d.now().In(d.loc).Format("2006-01-02")
}

// Ping is used by /debug.
func (d *DB) Ping() error {
	var one int
	return d.QueryRow(`SELECT 1`).Scan(&one)
}

// CountToday returns how many users have at least one point recorded today.
func (d *DB) CountToday() (int, error) {
	var n int
	err := d.QueryRow(
		`SELECT COUNT(DISTINCT telegram_id) FROM daily_points WHERE day=?`, d.today(),
	).Scan(&n)
	return n, err
}

// ---------- users -----------------------------------------------------------

// FindOrCreateUser registers the user on first contact.
func (d *DB) FindOrCreateUser(telegramID int64, firstName, username string) (*models.User, error) {
	_, err := d.Exec(`
        INSERT INTO users (telegram_id, first_name, username, created_at)
        VALUES (?,?,?,?)
        ON CONFLICT(telegram_id) DO UPDATE SET
            first_name=excluded.first_name,
            username=excluded.username
    `, telegramID, firstName, username, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	return d.GetUser(telegramID)
}

func (d *DB) GetUser(telegramID int64) (*models.User, error) {
	var (
		u    models.User
		name sql.NullString
		team sql.NullBool
	)
	err := d.QueryRow(`
        SELECT telegram_id, first_name, username, display_name, team_handler, created_at
        FROM users WHERE telegram_id=?`, telegramID,
	).Scan(&u.TelegramID, &u.FirstName, &u.Username, &name, &team, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if name.Valid {
		u.DisplayName = &name.String
	}
	if team.Valid {
		u.TeamHandler = &team.Bool
	}
	return &u, nil
}

func (d *DB) SetDisplayName(telegramID int64, name string) error {
	_, err := d.Exec(`UPDATE users SET display_name=? WHERE telegram_id=?`, name, telegramID)
	return err
}

func (d *DB) SetTeamHandler(telegramID int64, isHandler bool) error {
	_, err := d.Exec(`UPDATE users SET team_handler=? WHERE telegram_id=?`, isHandler, telegramID)
	return err
}

func (d *DB) ListUsers() ([]models.User, error) {
	rows, err := d.Query(`
        SELECT telegram_id, first_name, username, display_name, team_handler, created_at
        FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.User
	for rows.Next() {
		var (
			u    models.User
			name sql.NullString
			team sql.NullBool
		)
		if err := rows.Scan(&u.TelegramID, &u.FirstName, &u.Username, &name, &team, &u.CreatedAt); err != nil {
			return nil, err
		}
		if name.Valid {
			u.DisplayName = &name.String
		}
		if team.Valid {
			u.TeamHandler = &team.Bool
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

// ---------- daily mode ------------------------------------------------------

// GetDailyMode defaults to normal when nothing was recorded today.
func (d *DB) GetDailyMode(telegramID int64) (models.Mode, error) {
	var mode string
	err := d.QueryRow(
		`SELECT mode FROM daily_modes WHERE telegram_id=? AND day=?`, telegramID, d.today(),
	).Scan(&mode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ModeNormal, nil
	}
	if err != nil {
		return models.ModeNormal, err
	}
	return models.ParseMode(mode), nil
}

func (d *DB) SetDailyMode(telegramID int64, mode models.Mode) error {
	_, err := d.Exec(`
        INSERT INTO daily_modes (telegram_id, day, mode) VALUES (?,?,?)
        ON CONFLICT(telegram_id, day) DO UPDATE SET mode=excluded.mode
    `, telegramID, d.today(), string(mode))
	return err
}

// ---------- daily points ----------------------------------------------------

// GetRecord returns today's item values; an empty map means no data yet.
func (d *DB) GetRecord(telegramID int64) (map[string]models.ItemValue, error) {
	rows, err := d.Query(`
        SELECT item_key, done, excused, reason
        FROM daily_points WHERE telegram_id=? AND day=?`, telegramID, d.today())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rec := make(map[string]models.ItemValue)
	for rows.Next() {
		var (
			key string
			v   models.ItemValue
		)
		if err := rows.Scan(&key, &v.Done, &v.Excused, &v.Reason); err != nil {
			return nil, err
		}
		rec[key] = v
	}
	return rec, rows.Err()
}

// SetItemDone records done/undone and drops any excuse on the same key.
func (d *DB) SetItemDone(telegramID int64, itemKey string, done bool) error {
	_, err := d.Exec(`
        INSERT INTO daily_points (telegram_id, day, item_key, done, excused, reason, updated_at)
        VALUES (?,?,?,?,0,'',?)
        ON CONFLICT(telegram_id, day, item_key) DO UPDATE SET
            done=excluded.done, excused=0, reason='', updated_at=excluded.updated_at
    `, telegramID, d.today(), itemKey, done, time.Now().Unix())
	return err
}

func (d *DB) SetItemExcused(telegramID int64, itemKey, reason string) error {
	_, err := d.Exec(`
        INSERT INTO daily_points (telegram_id, day, item_key, done, excused, reason, updated_at)
        VALUES (?,?,?,0,1,?,?)
        ON CONFLICT(telegram_id, day, item_key) DO UPDATE SET
            done=0, excused=1, reason=excluded.reason, updated_at=excluded.updated_at
    `, telegramID, d.today(), itemKey, reason, time.Now().Unix())
	return err
}

// ClearToday wipes all of today's item values; the daily mode row is
// overwritten separately by the mode-switch confirmation.
func (d *DB) ClearToday(telegramID int64) error {
	_, err := d.Exec(`DELETE FROM daily_points WHERE telegram_id=? AND day=?`, telegramID, d.today())
	return err
}

// ---------- pending excuse --------------------------------------------------

// SetPendingExcuse overwrites the user's single pending slot.
func (d *DB) SetPendingExcuse(p *models.PendingExcuse) error {
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	_, err := d.Exec(`
        INSERT OR REPLACE INTO pending_excuses (telegram_id, item_key, mode, label, created_at)
        VALUES (?,?,?,?,?)
    `, p.TelegramID, p.ItemKey, string(p.Mode), p.Label, p.CreatedAt)
	return err
}

func (d *DB) GetPendingExcuse(telegramID int64) (*models.PendingExcuse, error) {
	var (
		p    models.PendingExcuse
		mode string
	)
	err := d.QueryRow(`
        SELECT telegram_id, item_key, mode, label, created_at
        FROM pending_excuses WHERE telegram_id=?`, telegramID,
	).Scan(&p.TelegramID, &p.ItemKey, &mode, &p.Label, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Mode = models.ParseMode(mode)
	return &p, nil
}

func (d *DB) ClearPendingExcuse(telegramID int64) error {
	_, err := d.Exec(`DELETE FROM pending_excuses WHERE telegram_id=?`, telegramID)
	return err
}
