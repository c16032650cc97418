// Package tasks provides runners for manual one-off tasks.
package tasks

import (
	"context"
	"errors"
	"sort"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/printers"
)

// Add creates a manual task.
type Add struct {
	Title   string
	Date    string
	Icon    string
	Notes   string
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	t, err := n.Service.AddTask(ctx, n.Title, n.Date, n.Icon, n.Notes)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tasks")
	pp.Tasks(t)
	return nil
}

// List prints all manual tasks sorted by date, undated last.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	st, err := n.Service.Load(ctx)
	if err != nil {
		return err
	}
	all := append([]*model.Task{}, st.Tasks...)
	sort.SliceStable(all, func(i, j int) bool {
		if (all[i].Date == "") != (all[j].Date == "") {
			return all[i].Date != ""
		}
		return all[i].Date < all[j].Date
	})

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return nil
}

// Done completes a task by deleting it; no history is kept.
type Done struct {
	ID      string
	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	return n.Service.CompleteTask(ctx, n.ID)
}
