package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/store"
)

// dispatch routes one parsed command to its handler and returns the reply
// text. Every handler leaves the book untouched when it reports an error.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) string {
	switch cmd {
	case config.CmdHello:
		return a.GetMsg(config.TKeyGreeting)
	case config.CmdAdd:
		return a.handleAdd(args)
	case config.CmdChange:
		return a.handleChange(args)
	case config.CmdPhone:
		return a.handlePhone(args)
	case config.CmdRemovePhone:
		return a.handleRemovePhone(args)
	case config.CmdDelete:
		return a.handleDelete(args)
	case config.CmdAll:
		return a.handleAll()
	case config.CmdAddBirthday:
		return a.handleAddBirthday(args)
	case config.CmdShowBirthday:
		return a.handleShowBirthday(args)
	case config.CmdBirthdays:
		return a.handleBirthdays()
	case config.CmdExport:
		return a.handleExport(ctx, args)
	case config.CmdImport:
		return a.handleImport(ctx, args)
	case config.CmdSave:
		return a.handleSave(ctx)
	case config.CmdHelp:
		return a.GetMsg(config.TKeyHelp)
	default:
		slog.Warn(config.MsgUnknownCmd,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyCommand, cmd,
		)
		return a.GetMsg(config.TKeyInvalidCommand)
	}
}

func (a *App) handleAdd(args []string) string {
	if len(args) < 2 {
		return a.GetMsg(config.TKeyUsageAdd)
	}
	name, phone := args[0], args[1]

	rec, exists := a.Book.Find(name)
	if !exists {
		newRec, err := book.NewRecord(name)
		if err != nil {
			return a.renderError(err)
		}
		rec = newRec
	}

	if err := rec.AddPhone(phone); err != nil {
		return a.renderError(err)
	}
	a.Book.AddRecord(rec)

	if exists {
		return a.GetMsg(config.TKeyContactUpdated)
	}
	return a.GetMsg(config.TKeyContactAdded)
}

func (a *App) handleChange(args []string) string {
	if len(args) < 3 {
		return a.GetMsg(config.TKeyUsageChange)
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		return a.GetMsg(config.TKeyContactNotFound)
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return a.renderError(err)
	}
	return a.GetMsg(config.TKeyPhoneUpdated)
}

func (a *App) handlePhone(args []string) string {
	if len(args) < 1 {
		return a.GetMsg(config.TKeyUsagePhone)
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		return a.GetMsg(config.TKeyContactNotFound)
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return a.GetMsgData(config.TKeyNoPhones, map[string]any{"Name": rec.Name().String()})
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return a.GetMsgData(config.TKeyPhonesOf, map[string]any{
		"Name":   rec.Name().String(),
		"Phones": strings.Join(values, config.NameSeparator),
	})
}

func (a *App) handleRemovePhone(args []string) string {
	if len(args) < 2 {
		return a.GetMsg(config.TKeyUsageRemovePhone)
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		return a.GetMsg(config.TKeyContactNotFound)
	}
	if !rec.RemovePhone(args[1]) {
		return a.GetMsg(config.TKeyPhoneNotFound)
	}
	return a.GetMsg(config.TKeyPhoneRemoved)
}

func (a *App) handleDelete(args []string) string {
	if len(args) < 1 {
		return a.GetMsg(config.TKeyUsageDelete)
	}
	if !a.Book.Delete(args[0]) {
		return a.GetMsg(config.TKeyContactNotFound)
	}
	return a.GetMsg(config.TKeyContactDeleted)
}

func (a *App) handleAll() string {
	records := a.Book.Records()
	if len(records) == 0 {
		return a.GetMsg(config.TKeyNoContacts)
	}
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n")
}

func (a *App) handleAddBirthday(args []string) string {
	if len(args) < 2 {
		return a.GetMsg(config.TKeyUsageAddBday)
	}
	name, date := args[0], args[1]

	rec, exists := a.Book.Find(name)
	if !exists {
		newRec, err := book.NewRecord(name)
		if err != nil {
			return a.renderError(err)
		}
		rec = newRec
	}

	if err := rec.SetBirthday(date); err != nil {
		return a.renderError(err)
	}
	a.Book.AddRecord(rec)
	return a.GetMsg(config.TKeyBirthdayAdded)
}

func (a *App) handleShowBirthday(args []string) string {
	if len(args) < 1 {
		return a.GetMsg(config.TKeyUsageShowBday)
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		return a.GetMsg(config.TKeyContactNotFound)
	}
	bday := rec.BirthdayString()
	if bday == "" {
		return a.GetMsgData(config.TKeyNoBirthday, map[string]any{"Name": rec.Name().String()})
	}
	return a.GetMsgData(config.TKeyBirthdayOf, map[string]any{
		"Name": rec.Name().String(),
		"Date": bday,
	})
}

// handleBirthdays groups the report by congratulation date, keeping the
// dates in first-seen order so the output is stable for a given book.
func (a *App) handleBirthdays() string {
	upcoming := a.Generator.Upcoming(a.Book)
	if len(upcoming) == 0 {
		return a.GetMsg(config.TKeyNoUpcoming)
	}

	var dates []string
	grouped := make(map[string][]string)
	for _, g := range upcoming {
		date := g.Congratulation.Format(config.DateFormatBirthday)
		if _, seen := grouped[date]; !seen {
			dates = append(dates, date)
		}
		grouped[date] = append(grouped[date], g.Name)
	}

	lines := make([]string, len(dates))
	for i, date := range dates {
		lines[i] = date + ": " + strings.Join(grouped[date], config.NameSeparator)
	}
	return strings.Join(lines, "\n")
}

func (a *App) handleExport(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return a.GetMsg(config.TKeyUsageExport)
	}
	path := args[0]
	if !strings.HasSuffix(path, config.ExtICS) {
		return a.GetMsg(config.TKeyUsageExport)
	}

	// Optional second argument: an ISO8601 alarm trigger such as -P1D.
	reminderTrigger := ""
	if len(args) > 1 {
		reminderTrigger = args[1]
	}

	data, count, err := a.Generator.BuildCalendar(ctx, a.Book, reminderTrigger)
	if err != nil {
		a.logCommandError(config.CmdExport, err)
		return a.GetMsg(config.TKeyExportFailed)
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		a.logCommandError(config.CmdExport, fmt.Errorf("%s: %w", config.ErrExportWrite, err))
		return a.GetMsg(config.TKeyExportFailed)
	}
	return a.GetMsgData(config.TKeyExported, map[string]any{"Path": path, "Count": count})
}

func (a *App) handleImport(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return a.GetMsg(config.TKeyUsageImport)
	}
	f, err := os.Open(args[0])
	if err != nil {
		a.logCommandError(config.CmdImport, fmt.Errorf("%s: %w", config.ErrImportOpen, err))
		return a.GetMsg(config.TKeyImportFailed)
	}
	defer func() { _ = f.Close() }()

	merged, err := store.MergeVCards(ctx, a.Book, f)
	if err != nil {
		a.logCommandError(config.CmdImport, err)
		return a.GetMsg(config.TKeyImportFailed)
	}

	slog.Info(config.MsgImportMerged,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyPath, args[0],
		config.LogKeyMerged, merged,
	)
	return a.GetMsgData(config.TKeyImported, map[string]any{"Count": merged})
}

func (a *App) handleSave(ctx context.Context) string {
	if err := a.Store.Save(ctx, a.Book); err != nil {
		a.logCommandError(config.CmdSave, err)
		return a.GetMsg(config.TKeySaveFailed)
	}
	return a.GetMsg(config.TKeySaved)
}

// renderError maps the typed core errors onto localized user phrasing.
func (a *App) renderError(err error) string {
	var validation *book.ValidationError
	if errors.As(err, &validation) {
		switch validation.Field {
		case config.FieldName:
			return a.GetMsg(config.TKeyInvalidName)
		case config.FieldPhone:
			return a.GetMsg(config.TKeyInvalidPhone)
		default:
			return a.GetMsg(config.TKeyInvalidDate)
		}
	}

	var duplicate *book.DuplicatePhoneError
	if errors.As(err, &duplicate) {
		return a.GetMsg(config.TKeyPhoneDuplicate)
	}

	var notFound *book.NotFoundError
	if errors.As(err, &notFound) {
		return a.GetMsg(config.TKeyPhoneNotFound)
	}

	return a.GetMsg(config.TKeyInvalidCommand)
}

func (a *App) logCommandError(cmd string, err error) {
	slog.Error(config.ErrAppFailed,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, cmd,
		config.LogKeyError, err,
	)
}
