package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zaqqye/portfolio_backend/internal/client"
)

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := api.Projects(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range projects {
				fmt.Fprintf(out, "%s\n  %s\n", p.Title, p.Description)
				if len(p.TechTags) > 0 {
					fmt.Fprintf(out, "  tech: %s\n", strings.Join(p.TechTags, ", "))
				}
				if p.DemoURL != "" {
					fmt.Fprintf(out, "  demo: %s\n", p.DemoURL)
				}
				if p.GithubURL != "" {
					fmt.Fprintf(out, "  code: %s\n", p.GithubURL)
				}
			}
			return nil
		},
	}
	cmd.AddCommand(projectAddCmd())
	return cmd
}

func projectAddCmd() *cobra.Command {
	var p client.Project
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := api.CreateProject(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Title, "title", "", "project title")
	cmd.Flags().StringVar(&p.Description, "description", "", "project description")
	cmd.Flags().StringVar(&p.ImageURL, "image", "", "image URL")
	cmd.Flags().StringSliceVar(&p.TechTags, "tech", nil, "technology tags, in display order")
	cmd.Flags().StringVar(&p.DemoURL, "demo", "", "live demo URL")
	cmd.Flags().StringVar(&p.GithubURL, "github", "", "source repository URL")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func skillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := api.Skills(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range skills {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Name, s.Level)
			}
			return nil
		},
	}
	cmd.AddCommand(skillAddCmd())
	return cmd
}

func skillAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name] [level]",
		Short: "Create a skill entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := api.CreateSkill(cmd.Context(), client.Skill{Name: args[0], Level: args[1]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created skill %s\n", created.ID)
			return nil
		},
	}
	return cmd
}
