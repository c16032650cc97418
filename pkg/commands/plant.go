package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/runner/plants"
)

func addPlant(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "plant",
		Aliases: []string{"plants", "cultivar"},
		Short:   "Manage the plant collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPlantList(cmd)
	addPlantShow(cmd)
	addPlantAdd(cmd)
	addPlantEdit(cmd)
	addPlantFav(cmd)
	addPlantRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addPlantList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	query := ""
	favorites := false

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List plants",
		Example: `
violet plant list
violet plant list --query optimara
violet plant list --favorites
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := plants.List{
				Query:     query,
				Favorites: favorites,
				ShowID:    io.ShowID,
				JSON:      oo.JSON,
				Service:   s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by substring of name, blossom, color, leaf, or location.")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "Only favorites.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addPlantShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <plant>",
		Short: "Show one plant's record",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a plant")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := plants.Show{
				Plant:   strings.Join(args, " "),
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

// plantFlags registers the editable plant fields on cmd, writing into p.
func plantFlags(cmd *cobra.Command, p *model.Plant) {
	cmd.Flags().StringVar(&p.Nickname, "nickname", p.Nickname, "Nickname.")
	cmd.Flags().StringVar(&p.Hybridizer, "hybridizer", p.Hybridizer, "Hybridizer.")
	cmd.Flags().StringVar(&p.Year, "year", p.Year, "Year of introduction.")
	cmd.Flags().StringVar(&p.Blossom, "blossom", p.Blossom, "Blossom type.")
	cmd.Flags().StringVar(&p.Color, "color", p.Color, "Blossom color.")
	cmd.Flags().StringVar(&p.Leaf, "leaf", p.Leaf, "Leaf type.")
	cmd.Flags().StringVar(&p.Variegation, "variegation", p.Variegation, "Leaf variegation.")
	cmd.Flags().StringVar(&p.Pot, "pot", p.Pot, "Pot size.")
	cmd.Flags().StringVar(&p.Location, "location", p.Location, "Where the plant lives.")
	cmd.Flags().StringVar(&p.Acquired, "acquired", p.Acquired, "Acquisition date (yyyy-mm-dd).")
	cmd.Flags().StringVar(&p.Source, "source", p.Source, "Where the plant came from.")
	cmd.Flags().IntVar(&p.WaterInterval, "water-every", p.WaterInterval, "Watering interval in days. 0 disables.")
	cmd.Flags().IntVar(&p.FertInterval, "fert-every", p.FertInterval, "Fertilizing interval in days. 0 disables.")
	cmd.Flags().StringVar(&p.FertilizerNPK, "npk", p.FertilizerNPK, "Fertilizer NPK ratio.")
	cmd.Flags().StringVar(&p.FertilizerMethod, "fert-method", p.FertilizerMethod, "Fertilizing method.")
	cmd.Flags().StringVar(&p.Notes, "notes", p.Notes, "Free-text notes.")
	cmd.Flags().StringVar(&p.Photo, "photo", p.Photo, "Photo reference.")
}

func addPlantAdd(topLevel *cobra.Command) {
	plant := model.Plant{}

	cmd := &cobra.Command{
		Use:   "add <cultivar name>",
		Short: "Add a plant",
		Example: `
violet plant add "Rob's Boolaroo" --nickname Boo --water-every 7 --fert-every 30
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a cultivar name")
			}
			plant.CultivarName = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := plants.Add{Plant: plant, Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	plantFlags(cmd, &plant)
	topLevel.AddCommand(cmd)
}

func addPlantEdit(topLevel *cobra.Command) {
	edits := model.Plant{}
	name := ""

	cmd := &cobra.Command{
		Use:   "edit <plant>",
		Short: "Edit a plant's fields",
		Example: `
violet plant edit Boo --location "north sill" --water-every 5
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a plant")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			flags := cmd.Flags()
			r := plants.Edit{
				Plant: strings.Join(args, " "),
				Mutate: func(p *model.Plant) {
					if flags.Changed("name") {
						p.CultivarName = name
					}
					if flags.Changed("nickname") {
						p.Nickname = edits.Nickname
					}
					if flags.Changed("hybridizer") {
						p.Hybridizer = edits.Hybridizer
					}
					if flags.Changed("year") {
						p.Year = edits.Year
					}
					if flags.Changed("blossom") {
						p.Blossom = edits.Blossom
					}
					if flags.Changed("color") {
						p.Color = edits.Color
					}
					if flags.Changed("leaf") {
						p.Leaf = edits.Leaf
					}
					if flags.Changed("variegation") {
						p.Variegation = edits.Variegation
					}
					if flags.Changed("pot") {
						p.Pot = edits.Pot
					}
					if flags.Changed("location") {
						p.Location = edits.Location
					}
					if flags.Changed("acquired") {
						p.Acquired = edits.Acquired
					}
					if flags.Changed("source") {
						p.Source = edits.Source
					}
					if flags.Changed("water-every") {
						p.WaterInterval = edits.WaterInterval
					}
					if flags.Changed("fert-every") {
						p.FertInterval = edits.FertInterval
					}
					if flags.Changed("npk") {
						p.FertilizerNPK = edits.FertilizerNPK
					}
					if flags.Changed("fert-method") {
						p.FertilizerMethod = edits.FertilizerMethod
					}
					if flags.Changed("notes") {
						p.Notes = edits.Notes
					}
					if flags.Changed("photo") {
						p.Photo = edits.Photo
					}
				},
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Rename the cultivar.")
	plantFlags(cmd, &edits)
	topLevel.AddCommand(cmd)
}

func addPlantFav(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "fav <plant>",
		Aliases: []string{"favorite"},
		Short:   "Toggle a plant's favorite flag",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a plant")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			p, err := s.GetPlant(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return oo.HandleError(err)
			}
			_, err = s.ToggleFavorite(cmd.Context(), p.ID)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addPlantRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <plant>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a plant, keeping its care history",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a plant")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			q := strings.Join(args, " ")
			p, err := s.GetPlant(cmd.Context(), q)
			if err != nil {
				return oo.HandleError(err)
			}
			if !co.Yes && !confirm("Delete "+p.Label()+"? Care history is kept") {
				return nil
			}
			r := plants.Remove{Plant: p.ID, Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
