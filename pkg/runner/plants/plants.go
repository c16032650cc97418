// Package plants provides runners for collection management.
package plants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/printers"
)

// List prints the collection, optionally filtered by a substring query over
// name, nickname, blossom, color, leaf, and location.
type List struct {
	Query     string
	Favorites bool
	ShowID    bool
	JSON      bool
	Service   *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	all, err := n.Service.Plants(ctx)
	if err != nil {
		return err
	}

	q := strings.ToLower(strings.TrimSpace(n.Query))
	filtered := make([]*model.Plant, 0, len(all))
	for _, p := range all {
		if n.Favorites && !p.Favorite {
			continue
		}
		if q != "" {
			hay := strings.ToLower(strings.Join([]string{
				p.CultivarName, p.Nickname, p.Blossom, p.Color, p.Leaf, p.Location,
			}, " "))
			if !strings.Contains(hay, q) {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	if n.JSON {
		data, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Plants", len(filtered))
	pp.Plants(filtered...)
	return nil
}

// Show prints one plant's full record.
type Show struct {
	Plant   string
	ShowID  bool
	JSON    bool
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	p, err := n.Service.GetPlant(ctx, n.Plant)
	if err != nil {
		return err
	}
	if n.JSON {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(p.Label())
	pp.PlantDetail(p)
	return nil
}

// Add stores a new plant and prints it.
type Add struct {
	Plant   model.Plant
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	p, err := n.Service.AddPlant(ctx, &n.Plant)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(p.Label())
	pp.PlantDetail(p)
	return nil
}

// Edit applies the given mutation to a plant resolved by query.
type Edit struct {
	Plant   string
	Mutate  func(*model.Plant)
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	p, err := n.Service.GetPlant(ctx, n.Plant)
	if err != nil {
		return err
	}
	p, err = n.Service.EditPlant(ctx, p.ID, n.Mutate)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(p.Label())
	pp.PlantDetail(p)
	return nil
}

// Remove deletes a plant. The care log is kept as history.
type Remove struct {
	Plant   string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	p, err := n.Service.GetPlant(ctx, n.Plant)
	if err != nil {
		return err
	}
	return n.Service.DeletePlant(ctx, p.ID)
}
