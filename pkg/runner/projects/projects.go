// Package projects provides runners for hybridization project tracking.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/printers"
)

// List prints the project summary table.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	all, err := n.Service.Projects(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Projects", len(all))
	pp.Projects(all...)
	return nil
}

// Show prints one project with parents, offspring, timeline, and variables.
type Show struct {
	Project string
	ShowID  bool
	JSON    bool
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	p, err := n.Service.GetProject(ctx, n.Project)
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
	pp.ProjectDetail(p)
	return nil
}

// Add creates a project.
type Add struct {
	Project model.Project
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	p, err := n.Service.AddProject(ctx, &n.Project)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.ProjectDetail(p)
	return nil
}

// Status moves a project to a new phase.
type Status struct {
	Project string
	Status  model.ProjectStatus
	Service *app.Service
}

func (n *Status) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not update, no service")
	}
	p, err := n.Service.GetProject(ctx, n.Project)
	if err != nil {
		return err
	}
	p, err = n.Service.SetProjectStatus(ctx, p.ID, n.Status)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.ProjectDetail(p)
	return nil
}

// Edit applies a free-form mutation to a project.
type Edit struct {
	Project string
	Mutate  func(*model.Project)
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	p, err := n.Service.GetProject(ctx, n.Project)
	if err != nil {
		return err
	}
	p, err = n.Service.EditProject(ctx, p.ID, n.Mutate)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.ProjectDetail(p)
	return nil
}

// Timeline appends a milestone to the project timeline.
type Timeline struct {
	Project string
	Date    string
	Note    string
	Service *app.Service
}

func (n *Timeline) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not update, no service")
	}
	p, err := n.Service.GetProject(ctx, n.Project)
	if err != nil {
		return err
	}
	p, err = n.Service.AddMilestone(ctx, p.ID, n.Date, n.Note)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.ProjectDetail(p)
	return nil
}

// TimelineRemove deletes a milestone from the project timeline.
type TimelineRemove struct {
	Project string
	ID      string
	Service *app.Service
}

func (n *TimelineRemove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not update, no service")
	}
	p, err := n.Service.GetProject(ctx, n.Project)
	if err != nil {
		return err
	}
	p, err = n.Service.RemoveMilestone(ctx, p.ID, n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.ProjectDetail(p)
	return nil
}

// Remove deletes a project outright.
type Remove struct {
	Project string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	p, err := n.Service.GetProject(ctx, n.Project)
	if err != nil {
		return err
	}
	return n.Service.DeleteProject(ctx, p.ID)
}
