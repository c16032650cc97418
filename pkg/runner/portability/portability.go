// Package portability provides backup, restore, and sync runners.
package portability

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/violet/pkg/app"
)

// Export writes the store backup (JSON, or the care log as CSV) to the
// output path, or stdout when none is given.
type Export struct {
	CSV     bool
	Output  string
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	var data []byte
	var err error
	if n.CSV {
		data, err = n.Service.ExportCareCSV(ctx)
	} else {
		data, err = n.Service.ExportJSON(ctx)
	}
	if err != nil {
		return err
	}
	if n.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(n.Output, data, 0o644)
}

// Import replaces the store with the backup file's contents.
type Import struct {
	File    string
	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	data, err := os.ReadFile(n.File)
	if err != nil {
		return err
	}
	if err := n.Service.Import(ctx, data); err != nil {
		return err
	}
	fmt.Println("Imported successfully.")
	return nil
}

// Erase drops all plants, care history, projects, and tasks.
type Erase struct {
	Service *app.Service
}

func (n *Erase) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not erase, no service")
	}
	return n.Service.Erase(ctx)
}

// Sync forces a pull-reconcile-push round trip now.
type Sync struct {
	Service *app.Service
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sync, no service")
	}
	if err := n.Service.Sync(ctx); err != nil {
		return err
	}
	fmt.Println("Synced.")
	return nil
}
