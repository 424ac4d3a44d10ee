package client

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/atotto/clipboard"

	"github.com/credvault/credvault/internal/service"
	"github.com/credvault/credvault/internal/workers"
	"github.com/credvault/credvault/models"
)

// tokenEnvVar lets scripted logins avoid putting the token on the command
// line, where it would land in shell history.
const tokenEnvVar = "CREDVAULT_TOKEN"

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	token := fs.String("token", "", "bearer token issued by the authentication provider")
	credential := fs.String("credential", "", "vault credential used to derive the encryption key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *token == "" {
		*token = os.Getenv(tokenEnvVar)
	}
	if *token == "" {
		value, err := a.promptSecret("token")
		if err != nil {
			return err
		}
		*token = value
	}
	if *credential == "" {
		value, err := a.promptSecret("credential")
		if err != nil {
			return err
		}
		*credential = value
	}

	session, err := a.vault.StartSession(ctx, *token)
	if err != nil {
		return err
	}
	if err = a.keys.Unlock(*credential); err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}
	if err = a.sessions.SaveToken(*token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "signed in as %s\n", session.AccountID)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	if err := a.vault.EndSession(ctx); err != nil {
		return err
	}
	if err := a.sessions.DeleteToken(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out, vault locked")
	return nil
}

func (a *App) cmdList(ctx context.Context) error {
	a.restoreState(ctx)

	records, err := a.vault.Load(ctx)
	if err != nil {
		return err
	}
	a.printRecords(records)
	return nil
}

func (a *App) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	title := fs.String("title", "", "display name of the entry")
	secret := fs.String("secret", "", "the credential value")
	account := fs.String("account", "", "login the secret belongs to")
	website := fs.String("website", "", "resource the credential applies to")
	category := fs.String("category", "", "one of the known categories")
	notes := fs.String("notes", "", "free-text annotations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	record := models.Record{
		Title:     *title,
		Secret:    *secret,
		AccountID: *account,
		Website:   *website,
		Category:  *category,
		Notes:     *notes,
	}
	if err := a.validate.Validate(ctx, record); err != nil {
		return err
	}

	a.restoreState(ctx)
	saved, err := a.vault.Save(ctx, record)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "saved %s\n", saved.ID)
	return nil
}

func (a *App) cmdUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	id := fs.String("id", "", "record to change")
	title := fs.String("title", "", "new display name")
	secret := fs.String("secret", "", "new credential value")
	account := fs.String("account", "", "new login")
	website := fs.String("website", "", "new resource")
	category := fs.String("category", "", "new category")
	notes := fs.String("notes", "", "new annotations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required: %w", service.ErrRecordNotFound)
	}

	a.restoreState(ctx)
	record, err := a.findRecord(ctx, *id)
	if err != nil {
		return err
	}

	provided := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { provided[f.Name] = true })
	if provided["title"] {
		record.Title = *title
	}
	if provided["secret"] {
		record.Secret = *secret
	}
	if provided["account"] {
		record.AccountID = *account
	}
	if provided["website"] {
		record.Website = *website
	}
	if provided["category"] {
		record.Category = *category
	}
	if provided["notes"] {
		record.Notes = *notes
	}

	if err = a.validate.Validate(ctx, record); err != nil {
		return err
	}

	updated, err := a.vault.Update(ctx, record)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated %s\n", updated.ID)
	return nil
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	reveal := fs.Bool("reveal", false, "print the secret in clear text")
	copySecret := fs.Bool("copy", false, "copy the secret to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("record id required: %w", service.ErrRecordNotFound)
	}

	a.restoreState(ctx)
	record, err := a.findRecord(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	secret := "********"
	if *reveal || record.Locked {
		secret = record.Secret
	}

	fmt.Fprintf(a.out, "id:       %s\n", record.ID)
	fmt.Fprintf(a.out, "title:    %s\n", record.Title)
	fmt.Fprintf(a.out, "account:  %s\n", record.AccountID)
	fmt.Fprintf(a.out, "secret:   %s\n", secret)
	fmt.Fprintf(a.out, "website:  %s\n", record.Website)
	fmt.Fprintf(a.out, "category: %s\n", record.Category)
	fmt.Fprintf(a.out, "notes:    %s\n", record.Notes)

	if *copySecret {
		if record.Locked {
			return fmt.Errorf("record is locked: %w", service.ErrKeyUnavailable)
		}
		if err = clipboard.WriteAll(record.Secret); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "secret copied to clipboard")
	}
	return nil
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("record id required: %w", service.ErrRecordNotFound)
	}

	a.restoreState(ctx)
	if err := a.vault.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", args[0])
	return nil
}

func (a *App) cmdSearch(ctx context.Context, args []string) error {
	a.restoreState(ctx)

	records, err := a.vault.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printRecords(records)
	return nil
}

func (a *App) cmdStats(ctx context.Context) error {
	a.restoreState(ctx)

	stats, err := a.vault.CategoryStats(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, category := range models.KnownCategories() {
		if count, ok := stats[category]; ok {
			fmt.Fprintf(w, "%s\t%d\n", category, count)
		}
	}
	return w.Flush()
}

func (a *App) cmdExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	outPath := fs.String("o", "", "destination file (stdout when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.restoreState(ctx)
	data, err := a.vault.ExportJSON(ctx)
	if err != nil {
		return err
	}

	if *outPath == "" {
		_, err = a.out.Write(append(data, '\n'))
		return err
	}
	if err = os.WriteFile(*outPath, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(a.out, "exported to %s\n", *outPath)
	return nil
}

func (a *App) cmdImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	inPath := fs.String("i", "", "JSON export to load")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return fmt.Errorf("-i is required")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	a.restoreState(ctx)
	count, err := a.vault.ImportJSON(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "imported %d records\n", count)
	return nil
}

func (a *App) cmdBackup(ctx context.Context) error {
	a.restoreState(ctx)

	if err := a.vault.Backup(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "backup uploaded")
	return nil
}

func (a *App) cmdRestore(ctx context.Context) error {
	a.restoreState(ctx)

	records, err := a.vault.Restore(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "restored %d records\n", len(records))
	return nil
}

func (a *App) cmdAutoBackup(ctx context.Context, args []string) error {
	if len(args) == 0 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("usage: credvault autobackup on|off")
	}

	a.restoreState(ctx)
	if err := a.vault.SetCloudBackup(ctx, args[0] == "on"); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "automatic backups %s\n", args[0])
	return nil
}

func (a *App) cmdReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "confirm wiping all local data")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.restoreState(ctx)
	if err := a.vault.EmergencyReset(ctx, *yes); err != nil {
		return err
	}
	if err := a.sessions.DeleteToken(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "local vault wiped; cloud data is untouched")
	return nil
}

func (a *App) cmdWatch(ctx context.Context) error {
	a.restoreState(ctx)

	background := workers.NewWorkers(
		workers.NewRefreshWorker(a.vault, a.cfg.Workers.SyncInterval, a.logger),
	)
	background.Run()
	defer background.Stop()

	fmt.Fprintln(a.out, "watching for changes, press Ctrl+C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	return nil
}

func (a *App) findRecord(ctx context.Context, ref string) (models.Record, error) {
	records, err := a.vault.Load(ctx)
	if err != nil {
		return models.Record{}, err
	}
	for _, record := range records {
		if record.ID == ref || record.DocumentRef == ref {
			return record, nil
		}
	}
	return models.Record{}, fmt.Errorf("%q: %w", ref, service.ErrRecordNotFound)
}

func (a *App) printRecords(records []models.Record) {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "the vault is empty")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tACCOUNT\tCATEGORY\tSTATE")
	for _, record := range records {
		state := "ok"
		if record.Locked {
			state = "locked"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			record.ID, record.Title, record.AccountID, record.Category, state)
	}
	w.Flush()
}
