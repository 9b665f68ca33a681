package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"

	// SnapshotFileName is the default address book file inside the user config dir.
	SnapshotFileName = "contacts.vcf"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book snapshot and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app config and cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagDB          = "db"
	FlagLang        = "lang"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stderr"
	FlagDescDB      = "Path to the address book file (vCard format)"
	FlagDescLang    = "Interface language (ISO 639-1)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// REPL Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdRemovePhone  = "remove-phone"
	CmdDelete       = "delete"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdExport       = "export"
	CmdImport       = "import"
	CmdSave         = "save"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// SupportedLanguages defines the list of available interface languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// DefaultLanguage is used when the -lang flag names an unknown language.
const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyPrompt           = "prompt"
	TKeyWelcome          = "welcome"
	TKeyGoodbye          = "goodbye"
	TKeyGreeting         = "greeting"
	TKeyContactAdded     = "contact_added"
	TKeyContactUpdated   = "contact_updated"
	TKeyPhoneUpdated     = "phone_updated"
	TKeyPhoneRemoved     = "phone_removed"
	TKeyContactDeleted   = "contact_deleted"
	TKeyBirthdayAdded    = "birthday_added"
	TKeyBirthdayOf       = "birthday_of" // Requires Name, Date
	TKeyNoBirthday       = "no_birthday" // Requires Name
	TKeyPhonesOf         = "phones_of"   // Requires Name, Phones
	TKeyNoPhones         = "no_phones"   // Requires Name
	TKeyNoContacts       = "no_contacts"
	TKeyNoUpcoming       = "no_upcoming"
	TKeyContactNotFound  = "err_contact_not_found"
	TKeyPhoneNotFound    = "err_phone_not_found"
	TKeyPhoneDuplicate   = "err_phone_duplicate"
	TKeyInvalidName      = "err_invalid_name"
	TKeyInvalidPhone     = "err_invalid_phone"
	TKeyInvalidDate      = "err_invalid_date"
	TKeyInvalidCommand   = "err_invalid_command"
	TKeySaved            = "saved"
	TKeySaveFailed       = "err_save_failed"
	TKeyExported         = "exported" // Requires Path, Count
	TKeyExportFailed     = "err_export_failed"
	TKeyImported         = "imported" // Requires Count
	TKeyImportFailed     = "err_import_failed"
	TKeyHelp             = "help"
	TKeyUsageAdd         = "usage_add"
	TKeyUsageChange      = "usage_change"
	TKeyUsagePhone       = "usage_phone"
	TKeyUsageRemovePhone = "usage_remove_phone"
	TKeyUsageDelete      = "usage_delete"
	TKeyUsageAddBday     = "usage_add_birthday"
	TKeyUsageShowBday    = "usage_show_birthday"
	TKeyUsageExport      = "usage_export"
	TKeyUsageImport      = "usage_import"
	TKeyEvtSummary       = "event_summary"     // Requires Name
	TKeyEvtSummaryAge    = "event_summary_age" // Requires Name, Age
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	// PhoneLength is the exact number of decimal digits a phone must contain.
	PhoneLength = 10

	// UpcomingWindowDays is the inclusive lookahead for the birthdays report.
	UpcomingWindowDays = 7

	// Weekend shifts applied to the congratulation date.
	ShiftSaturdayDays = 2
	ShiftSundayDays   = 1

	UIDSalt = "go-contacts-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contacts//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontacts"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// vCard version stamped on every persisted card.
	VCardVersion = "4.0"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the canonical user-facing birthday layout (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// DateFormatVCardBDay is the layout stored in a vCard BDAY field.
	DateFormatVCardBDay = "20060102"

	// DateFormatVCardBDayDash accepts dashed BDAY values on import.
	DateFormatVCardBDayDash = "2006-01-02"

	// Display placeholders
	EmptyFieldPlaceholder = "-"
	PhoneSeparator        = "; "
	NameSeparator         = ", "

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF = ".vcf"
	ExtICS = ".ics"

	// TempFilePattern is used for atomic snapshot writes.
	TempFilePattern = "contacts-*.vcf.tmp"
)

// -----------------------------------------------------------------------------
// Timeouts
// -----------------------------------------------------------------------------

const (
	// SaveTimeout bounds the shutdown snapshot write.
	SaveTimeout = 5 * time.Second
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrStorePathEmpty = "configuration error: snapshot path is empty"
	ErrSnapshotOpen   = "failed to open snapshot file"
	ErrSnapshotDecode = "failed to decode vCard snapshot"
	ErrSnapshotEncode = "failed to encode vCard snapshot"
	ErrSnapshotWrite  = "failed to write snapshot file"
	ErrSnapshotRename = "failed to replace snapshot file"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrExportWrite    = "failed to write calendar file"
	ErrImportOpen     = "failed to open import file"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrConfigDir      = "could not determine user config dir"
	ErrCreateDir      = "could not create app dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrStdinRead      = "failed to read from input stream"

	// Validation reasons carried inside book.ValidationError.
	ReasonEmptyName    = "name cannot be empty or contain only spaces"
	ReasonInvalidPhone = "phone number must contain exactly 10 digits"
	ReasonInvalidDate  = "invalid date format, use DD.MM.YYYY"

	// Field identifiers for validation errors.
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down"
	MsgSnapshotLoaded  = "Address book loaded"
	MsgSnapshotMissing = "No snapshot found, starting with an empty book"
	MsgSnapshotSaved   = "Address book saved"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Skipping invalid BDAY value"
	MsgImportMerged    = "Import merged into address book"
	MsgGenSuccess      = "Calendar generation successful"
	MsgReplStarted     = "Command loop started"
	MsgReplStopped     = "Command loop stopped"
	MsgCmdReceived     = "Command received"
	MsgUnknownCmd      = "Unknown command received"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummary    = "Birthday: %s"
	FallbackSummaryAge = "Birthday: %s (%d)"

	// StubVCalendar is the minimal valid iCalendar object used when the book
	// holds no birthdays. Returning it keeps the exported file valid.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyMerged    = "merged"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompEngine = "engine"
	CompStore  = "store"
	CompCLI    = "cli"
	CompI18n   = "i18n"
)
