package main

import (
	"fmt"
	"strings"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the target roles in the skill catalog",
	Run: func(cmd *cobra.Command, args []string) {
		c := catalog.Default()
		out := cmd.OutOrStdout()
		for _, name := range c.RoleNames() {
			profile := c.Roles[name]
			marker := ""
			if name == c.DefaultRole {
				marker = " (default)"
			}
			fmt.Fprintf(out, "%s%s\n", name, marker)
			for _, tier := range domain.SkillTiers {
				fmt.Fprintf(out, "  %-10s%s\n", tier+":", strings.Join(profile.Tier(tier), ", "))
			}
		}
	},
}
