package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/form"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var search, by, order string
	var favorites bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := contact.ParseField(by)
			if err != nil {
				return err
			}
			o, err := contact.ParseOrder(order)
			if err != nil {
				return err
			}
			return withProfile(cmd, opts, func(s *session) error {
				shown := contact.Query(s.contacts.All(), contact.View{
					FavoritesOnly: favorites,
					Field:         field,
					Text:          search,
					Order:         o,
					Locale:        s.cfg.Tag(),
				})
				if opts.jsonOut {
					return outputJSON(cmd.OutOrStdout(), shown)
				}
				if len(shown) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No contacts found.")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tFAV")
				for _, c := range shown {
					fav := ""
					if c.Favorite {
						fav = "*"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, fav)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only contacts whose field contains this text")
	cmd.Flags().StringVar(&by, "by", "name", "field to search: name, email or phone")
	cmd.Flags().StringVar(&order, "sort", "asc", "name order: asc or desc")
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "only favorites")
	return cmd
}

func newAddCmd(opts *options) *cobra.Command {
	var d contact.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Example: `  rolodexctl add --name "Jane Smith" --email jane@example.com --phone "+1 234 567 8901"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := form.Validate(d); err != nil {
				return err
			}
			return withProfile(cmd, opts, func(s *session) error {
				c, err := s.contacts.Create(d)
				if err != nil {
					return err
				}
				return printContact(cmd, opts, c)
			})
		},
	}
	cmd.Flags().StringVar(&d.Name, "name", "", "full name")
	cmd.Flags().StringVar(&d.Email, "email", "", "email address")
	cmd.Flags().StringVar(&d.Phone, "phone", "", `phone with country code, e.g. "+1 234 567 8900"`)
	cmd.Flags().BoolVar(&d.Favorite, "favorite", false, "mark as favorite")
	return cmd
}

func newEditCmd(opts *options) *cobra.Command {
	var name, email, phone string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a contact's name, email or phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProfile(cmd, opts, func(s *session) error {
				c, ok := s.contacts.Get(args[0])
				if !ok {
					return notFound(args[0])
				}
				d := contact.Draft{Name: c.Name, Email: c.Email, Phone: c.Phone}
				if cmd.Flags().Changed("name") {
					d.Name = name
				}
				if cmd.Flags().Changed("email") {
					d.Email = email
				}
				if cmd.Flags().Changed("phone") {
					d.Phone = phone
				}
				if err := form.Validate(d); err != nil {
					return err
				}
				updated, _, err := s.contacts.Update(c.ID, d)
				if err != nil {
					return err
				}
				return printContact(cmd, opts, updated)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone with country code")
	return cmd
}

func newFavCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Toggle a contact's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProfile(cmd, opts, func(s *session) error {
				if _, ok := s.contacts.Get(args[0]); !ok {
					return notFound(args[0])
				}
				if err := s.contacts.ToggleFavorite(args[0]); err != nil {
					return err
				}
				c, _ := s.contacts.Get(args[0])
				return printContact(cmd, opts, c)
			})
		},
	}
}

func newRmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a contact",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProfile(cmd, opts, func(s *session) error {
				c, ok := s.contacts.Get(args[0])
				if !ok {
					return notFound(args[0])
				}
				if err := s.contacts.Delete(c.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", c.Name, c.ID)
				return nil
			})
		},
	}
}

func printContact(cmd *cobra.Command, opts *options, c contact.Contact) error {
	if opts.jsonOut {
		return outputJSON(cmd.OutOrStdout(), c)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ID:       %s\n", c.ID)
	fmt.Fprintf(w, "Name:     %s\n", c.Name)
	fmt.Fprintf(w, "Email:    %s\n", c.Email)
	fmt.Fprintf(w, "Phone:    %s\n", c.Phone)
	fmt.Fprintf(w, "Favorite: %v\n", c.Favorite)
	fmt.Fprintf(w, "Avatar:   %s\n", c.Avatar)
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("no contact with id %q", id)
}
