package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/credvault/credvault/internal/config"
	"github.com/credvault/credvault/internal/crypto"
	"github.com/credvault/credvault/internal/keystore"
	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/internal/service"
	"github.com/credvault/credvault/internal/validators"
	"github.com/credvault/credvault/internal/workers"
)

var _ Client = (*App)(nil)

// App is the command-line client: one invocation, one command. Session token
// and key material are persisted through the OS keystore, so login survives
// across invocations.
type App struct {
	cfg      config.ClientConfig
	vault    service.VaultService
	keys     crypto.KeyService
	validate validators.Validator
	sessions *sessionStore
	backup   *workers.Debouncer
	logger   *logger.Logger

	args []string
	in   io.Reader
	out  io.Writer
	errw io.Writer
}

func NewApp(
	cfg config.ClientConfig,
	vault service.VaultService,
	keys crypto.KeyService,
	secrets keystore.SecretStore,
	backup *workers.Debouncer,
	logger *logger.Logger,
) *App {
	return &App{
		cfg:      cfg,
		vault:    vault,
		keys:     keys,
		validate: validators.NewRecordValidator(),
		sessions: newSessionStore(secrets),
		backup:   backup,
		logger:   logger,
		args:     os.Args[1:],
		in:       os.Stdin,
		out:      os.Stdout,
		errw:     os.Stderr,
	}
}

func (a *App) Run() error {
	// a mutation scheduled right before exit must still fire
	defer a.backup.Stop()

	if len(a.args) == 0 {
		a.printUsage()
		return nil
	}

	ctx := a.logger.WithContext(context.Background())
	command, args := a.args[0], a.args[1:]

	var err error
	switch command {
	case "login":
		err = a.cmdLogin(ctx, args)
	case "logout":
		err = a.cmdLogout(ctx)
	case "list":
		err = a.cmdList(ctx)
	case "add":
		err = a.cmdAdd(ctx, args)
	case "update":
		err = a.cmdUpdate(ctx, args)
	case "show":
		err = a.cmdShow(ctx, args)
	case "delete":
		err = a.cmdDelete(ctx, args)
	case "search":
		err = a.cmdSearch(ctx, args)
	case "stats":
		err = a.cmdStats(ctx)
	case "export":
		err = a.cmdExport(ctx, args)
	case "import":
		err = a.cmdImport(ctx, args)
	case "backup":
		err = a.cmdBackup(ctx)
	case "restore":
		err = a.cmdRestore(ctx)
	case "autobackup":
		err = a.cmdAutoBackup(ctx, args)
	case "reset":
		err = a.cmdReset(ctx, args)
	case "watch":
		err = a.cmdWatch(ctx)
	case "help", "-h", "--help":
		a.printUsage()
	default:
		a.printUsage()
		err = fmt.Errorf("unknown command %q", command)
	}

	if err != nil {
		fmt.Fprintln(a.errw, userMessage(err))
	}
	return err
}

// restoreState brings a fresh process back to the authenticated state of the
// previous invocation: key material from the keystore, session token from the
// session store. Both absences are soft; the command's own auth checks will
// produce the user-facing error.
func (a *App) restoreState(ctx context.Context) {
	log := logger.FromContext(ctx)

	if _, err := a.keys.Restore(); err != nil {
		log.Warn().Str("func", "App.restoreState").Err(err).Msg("could not restore key material")
	}

	token, err := a.sessions.LoadToken()
	if err != nil {
		log.Warn().Str("func", "App.restoreState").Err(err).Msg("could not read session token")
		return
	}
	if token == "" {
		return
	}

	if _, err = a.vault.StartSession(ctx, token); err != nil {
		log.Warn().Str("func", "App.restoreState").Msg("persisted session no longer valid")
	}
}

// promptSecret reads one line from the interactive input without echoing
// machinery; the terminal handling is left to the caller's shell.
func (a *App) promptSecret(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	reader := bufio.NewReader(a.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, `credvault - client-resident credential vault

usage: credvault <command> [flags]

  login       sign in with a bearer token and unlock the vault
  logout      drop the session and erase local key material
  list        list all records
  add         add a record (-title, -secret, -account, -website, -category, -notes)
  update      change a record (-id plus the fields to replace)
  show        print one record (args: <id>; -reveal, -copy)
  delete      delete a record (args: <id>)
  search      find records (args: <query>)
  stats       record counts per category
  export      write the decrypted vault as JSON (-o file)
  import      load records from a JSON export (-i file)
  backup      upload a verified snapshot to the cloud store
  restore     repopulate an empty device from the cloud store
  autobackup  toggle debounced backups after changes (args: on|off)
  reset       wipe everything on this device (-yes)
  watch       keep the cache fresh until interrupted
`)
}
