package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hearttrack/internal/filex"
	"github.com/dmitrijs2005/hearttrack/internal/netx"
)

// downloadFromURL is a test seam for fetching archived objects.
var downloadFromURL = netx.DownloadFromPresignedURL

// Export writes my_vitals.csv, or all_vitals.csv with "export all", into
// the export directory.
func (a *App) Export(ctx context.Context, args []string) error {
	name := "my_vitals.csv"
	fetch := a.api.ExportMine
	if len(args) > 0 && args[0] == "all" {
		name = "all_vitals.csv"
		fetch = a.api.ExportAll
	}

	path, err := a.writeExport(name, func(w io.Writer) error { return fetch(ctx, w) })
	if err != nil {
		return a.checkSession(err)
	}

	fmt.Fprintf(a.out, "Saved %s\n", path)
	return nil
}

// Archive asks the server to upload the all-vitals CSV to object storage,
// then downloads a local copy through the presigned link.
func (a *App) Archive(ctx context.Context) error {
	res, err := a.api.Archive(ctx)
	if err != nil {
		return a.checkSession(err)
	}

	fmt.Fprintf(a.out, "Archived as %s\n", res.Key)

	path, err := a.writeExport("archive_all_vitals.csv", func(w io.Writer) error {
		return downloadFromURL(ctx, res.URL, w)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s\nDownload link valid until %s\n", path, res.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// writeExport runs fill into memory first so a failed fetch never truncates
// an earlier export of the same name.
func (a *App) writeExport(name string, fill func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		return "", err
	}

	f, err := filex.CreateInDir(a.config.ExportDir, name)
	if err != nil {
		return "", err
	}

	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
