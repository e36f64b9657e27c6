package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcdev12/hockeyfed/go/internal/announcements"
	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/federation"
	"github.com/mcdev12/hockeyfed/go/internal/registrations"
	"github.com/mcdev12/hockeyfed/go/internal/tools/snapshot"
	"github.com/mcdev12/hockeyfed/go/internal/users"
)

var errNotLoggedIn = errors.New("not logged in")

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill empty collections with the canonical dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				result := svc.Seeder.EnsureSeeded(ctx)
				for _, e := range result.Errors {
					log.Error().Str("error", e).Msg("seed error")
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
				return nil
			})
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored collection and the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear storage without --yes")
			}
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				return svc.Reset(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing all storage")
	return cmd
}

func listCmd() *cobra.Command {
	var openOnly bool
	cmd := &cobra.Command{
		Use:       "list <collection>",
		Short:     "Print a collection as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := collection.ParseKind(args[0])
			if err != nil {
				return err
			}
			if openOnly && kind != collection.Events {
				return errors.New("--open only applies to events")
			}
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				if openOnly {
					return printJSON(cmd.OutOrStdout(), svc.Events.OpenEvents(ctx))
				}
				items, err := svc.List(ctx, kind)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), items)
			})
		},
	}
	cmd.Flags().BoolVar(&openOnly, "open", false, "Only events still accepting registrations")
	return cmd
}

func registerCmd() *cobra.Command {
	var req users.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				user, err := svc.Users.Register(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "Username")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (at least 5 characters)")
	return cmd
}

func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				user, err := svc.Users.Login(ctx, args[0], password)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				user := svc.Users.CurrentSession(ctx)
				if user == nil {
					return errNotLoggedIn
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				return svc.Users.Logout(ctx)
			})
		},
	}
}

func deleteUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-user <id>",
		Short: "Remove an account as the signed-in administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				return svc.Users.DeleteUser(ctx, args[0], svc.Users.CurrentSession(ctx))
			})
		},
	}
}

func announceCmd() *cobra.Command {
	var req announcements.CreateAnnouncementRequest
	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Publish an announcement as the signed-in administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				created, err := svc.Announcements.CreateAnnouncement(ctx, req, svc.Users.CurrentSession(ctx))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), created)
			})
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "Title")
	cmd.Flags().StringVar(&req.Content, "content", "", "Body text")
	cmd.Flags().BoolVar(&req.Important, "important", false, "Flag as important")
	return cmd
}

func registerTeamCmd() *cobra.Command {
	var req registrations.RegisterTeamRequest
	cmd := &cobra.Command{
		Use:   "register-team",
		Short: "Enter a team into an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				reg, err := svc.Registrations.RegisterTeam(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), reg)
			})
		},
	}
	cmd.Flags().StringVar(&req.EventID, "event", "", "Event ID")
	cmd.Flags().StringVar(&req.TeamID, "team", "", "Team ID")
	cmd.Flags().BoolVar(&req.AcceptedTerms, "accept-terms", false, "Accept the terms and conditions")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write every collection to a JSON snapshot (stdout when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				snap := snapshot.Export(ctx, svc.Collections)
				if len(args) == 0 {
					return snapshot.Write(cmd.OutOrStdout(), snap)
				}
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("failed to create snapshot file: %w", err)
				}
				if err := snapshot.Write(f, snap); err != nil {
					_ = f.Close()
					return err
				}
				return f.Close()
			})
		},
	}
}

func importCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load collections from a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open snapshot: %w", err)
			}
			defer f.Close()

			snap, err := snapshot.Read(f)
			if err != nil {
				return err
			}
			return withServices(cmd.Context(), func(ctx context.Context, svc *federation.Services) error {
				result := snapshot.Import(ctx, svc.Collections, snap, overwrite)
				for _, e := range result.Errors {
					log.Error().Str("error", e).Msg("import error")
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
				if len(result.Errors) > 0 {
					return fmt.Errorf("%d collections failed to import", len(result.Errors))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace collections that already hold data")
	return cmd
}

func kindNames() []string {
	kinds := collection.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Key())
	}
	return names
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
