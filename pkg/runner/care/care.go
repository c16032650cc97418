// Package care provides runners for the care log.
package care

import (
	"context"
	"errors"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/printers"
)

// Log records a performed care action for a plant.
type Log struct {
	Plant   string
	Date    string
	Action  model.Action
	Notes   string
	Service *app.Service
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}
	p, err := n.Service.GetPlant(ctx, n.Plant)
	if err != nil {
		return err
	}
	e, err := n.Service.LogCare(ctx, p.ID, n.Date, n.Action, n.Notes)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(p.Label())
	pp.CareLog(func(string) string { return p.Label() }, e)
	return nil
}

// List prints the care log, newest first, with optional filters.
type List struct {
	Plant   string
	Action  model.Action
	From    string
	To      string
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	filter := app.CareFilter{Action: n.Action, From: n.From, To: n.To}
	if n.Plant != "" {
		p, err := n.Service.GetPlant(ctx, n.Plant)
		if err != nil {
			return err
		}
		filter.PlantID = p.ID
	}
	entries, err := n.Service.CareLog(ctx, filter)
	if err != nil {
		return err
	}

	plants, err := n.Service.Plants(ctx)
	if err != nil {
		return err
	}
	labels := make(map[string]string, len(plants))
	for _, p := range plants {
		labels[p.ID] = p.Label()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Care log", len(entries))
	pp.CareLog(func(id string) string { return labels[id] }, entries...)
	return nil
}

// Remove deletes a care entry; the plant's last-care cache is recomputed
// from what remains.
type Remove struct {
	ID      string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	return n.Service.DeleteCare(ctx, n.ID)
}
