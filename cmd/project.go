package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/estate-admin-cli/internal/adapters/render/console"
	"github.com/bnema/estate-admin-cli/internal/application"
	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProjectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage real-estate projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectGetCmd(app),
		newProjectCreateCmd(app),
		newProjectUpdateCmd(app),
		newProjectDeleteCmd(app),
		newProjectShareCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *app) *cobra.Command {
	var status string
	var filter application.ProjectFilter
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Status = domain.ProjectStatus(status)
			projects, err := app.projects.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, projects, func() (string, error) {
				return console.Projects(projects)
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only projects with this status (draft|active|inactive|completed)")
	cmd.Flags().StringVar(&filter.Type, "type", "", "Only projects of this type")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Match name or description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newProjectGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := app.projects.Get(cmd.Context(), domain.ProjectID(args[0]))
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, project, func() (string, error) {
				return console.Project(project)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newProjectCreateCmd(app *app) *cobra.Command {
	var fields projectFlags
	var images, videos, brochures []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project, uploading media when files are given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var input domain.ProjectInput
			fields.apply(cmd.Flags(), &input)

			uploads := &formFiles{}
			defer func() { err = errors.Join(err, uploads.Close()) }()

			command := application.CreateProjectCommand{Input: input}
			if command.Images, err = uploads.open("images", images); err != nil {
				return err
			}
			if command.Videos, err = uploads.open("videos", videos); err != nil {
				return err
			}
			if command.Brochures, err = uploads.open("brochures", brochures); err != nil {
				return err
			}

			project, err := app.projects.Create(cmd.Context(), command)
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, project, func() (string, error) {
				return console.Project(project)
			})
		},
	}

	fields.register(cmd.Flags())
	cmd.Flags().StringArrayVar(&images, "image", nil, "Image file to upload (repeatable)")
	cmd.Flags().StringArrayVar(&videos, "video", nil, "Video file to upload (repeatable)")
	cmd.Flags().StringArrayVar(&brochures, "brochure", nil, "Brochure file to upload (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newProjectUpdateCmd(app *app) *cobra.Command {
	var fields projectFlags
	var images, videos, documents []string
	var removals domain.MediaRemoval
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project; omitted flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			id := domain.ProjectID(args[0])

			current, err := app.projects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			input := domain.ProjectInputFromProject(current)
			fields.apply(cmd.Flags(), &input)

			uploads := &formFiles{}
			defer func() { err = errors.Join(err, uploads.Close()) }()

			command := application.UpdateProjectCommand{
				ID:       id,
				Input:    input,
				Existing: domain.ExistingFilesFromProject(current),
				Remove:   removals,
			}
			if command.Images, err = uploads.open("images", images); err != nil {
				return err
			}
			if command.Videos, err = uploads.open("videos", videos); err != nil {
				return err
			}
			if command.Documents, err = uploads.open("documents", documents); err != nil {
				return err
			}

			project, err := app.projects.Update(cmd.Context(), command)
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, project, func() (string, error) {
				return console.Project(project)
			})
		},
	}

	fields.register(cmd.Flags())
	cmd.Flags().StringArrayVar(&images, "image", nil, "Image file to add (repeatable)")
	cmd.Flags().StringArrayVar(&videos, "video", nil, "Video file to add (repeatable)")
	cmd.Flags().StringArrayVar(&documents, "document", nil, "Document file to add (repeatable)")
	cmd.Flags().StringArrayVar(&removals.Images, "remove-image", nil, "Existing image to drop, by URL or index (repeatable)")
	cmd.Flags().StringArrayVar(&removals.Videos, "remove-video", nil, "Existing video to drop, by URL or index (repeatable)")
	cmd.Flags().StringArrayVar(&removals.Documents, "remove-document", nil, "Existing document to drop, by URL or index (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newProjectDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.projects.Delete(cmd.Context(), domain.ProjectID(args[0])); err != nil {
				return err
			}
			return writeLine(cmd, "Deleted project %s", args[0])
		},
	}
}

func newProjectShareCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Create a public link for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.projects.Share(cmd.Context(), domain.ProjectID(args[0]))
			if err != nil {
				return err
			}
			return writeLine(cmd, "%s", link)
		},
	}
}

// projectFlags maps flags onto a ProjectInput. Only flags the operator set
// are applied, so update keeps the stored values for the rest.
type projectFlags struct {
	name, description, projectType, status string
	featured, public                       bool

	address, city, state, pincode string

	priceMin, priceMax int64
	currency           string
	areaMin, areaMax   int64
	areaUnit           string
	bedMin, bedMax     int64

	phone, email, whatsapp string
}

func (f *projectFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "Project name")
	flags.StringVar(&f.description, "description", "", "Project description")
	flags.StringVar(&f.projectType, "type", "", "Project type (default residential)")
	flags.StringVar(&f.status, "status", "", "Status: draft|active|inactive|completed (default draft)")
	flags.BoolVar(&f.featured, "featured", false, "Mark as featured")
	flags.BoolVar(&f.public, "public", false, "Mark as public")

	flags.StringVar(&f.address, "address", "", "Street address")
	flags.StringVar(&f.city, "city", "", "City")
	flags.StringVar(&f.state, "state", "", "State")
	flags.StringVar(&f.pincode, "pincode", "", "Postal code")

	flags.Int64Var(&f.priceMin, "price-min", 0, "Minimum price")
	flags.Int64Var(&f.priceMax, "price-max", 0, "Maximum price")
	flags.StringVar(&f.currency, "currency", "", "Price currency (default INR)")
	flags.Int64Var(&f.areaMin, "area-min", 0, "Minimum area")
	flags.Int64Var(&f.areaMax, "area-max", 0, "Maximum area")
	flags.StringVar(&f.areaUnit, "area-unit", "", "Area unit (default sqft)")
	flags.Int64Var(&f.bedMin, "bedrooms-min", 0, "Minimum bedrooms")
	flags.Int64Var(&f.bedMax, "bedrooms-max", 0, "Maximum bedrooms")

	flags.StringVar(&f.phone, "phone", "", "Contact phone")
	flags.StringVar(&f.email, "email", "", "Contact email")
	flags.StringVar(&f.whatsapp, "whatsapp", "", "Contact WhatsApp number")
}

func (f *projectFlags) apply(flags *pflag.FlagSet, in *domain.ProjectInput) {
	setString := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	setInt := func(name string, dst *int64, value int64) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	setBool := func(name string, dst *bool, value bool) {
		if flags.Changed(name) {
			*dst = value
		}
	}

	setString("name", &in.Name, f.name)
	setString("description", &in.Description, f.description)
	setString("type", &in.Type, f.projectType)
	if flags.Changed("status") {
		in.Status = domain.ProjectStatus(f.status)
	}
	setBool("featured", &in.Featured, f.featured)
	setBool("public", &in.IsPublic, f.public)

	setString("address", &in.Location.Address, f.address)
	setString("city", &in.Location.City, f.city)
	setString("state", &in.Location.State, f.state)
	setString("pincode", &in.Location.Pincode, f.pincode)

	setInt("price-min", &in.Price.Min, f.priceMin)
	setInt("price-max", &in.Price.Max, f.priceMax)
	setString("currency", &in.Price.Currency, f.currency)
	setInt("area-min", &in.Area.Min, f.areaMin)
	setInt("area-max", &in.Area.Max, f.areaMax)
	setString("area-unit", &in.Area.Unit, f.areaUnit)
	setInt("bedrooms-min", &in.Bedrooms.Min, f.bedMin)
	setInt("bedrooms-max", &in.Bedrooms.Max, f.bedMax)

	setString("phone", &in.ContactInfo.Phone, f.phone)
	setString("email", &in.ContactInfo.Email, f.email)
	setString("whatsapp", &in.ContactInfo.WhatsApp, f.whatsapp)
}

// formFiles keeps upload files open until the request has been sent.
type formFiles struct {
	opened []*os.File
}

func (f *formFiles) open(field string, paths []string) ([]domain.FormFile, error) {
	files := make([]domain.FormFile, 0, len(paths))
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s file: %w", field, err)
		}
		f.opened = append(f.opened, file)
		files = append(files, domain.FormFile{Field: field, FileName: filepath.Base(path), Content: file})
	}
	return files, nil
}

func (f *formFiles) Close() error {
	var errs []error
	for _, file := range f.opened {
		if err := file.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	f.opened = nil
	return errors.Join(errs...)
}
