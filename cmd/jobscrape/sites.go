package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SITE\tDOMAINS")
	for _, site := range deps.Registry.List() {
		fmt.Fprintf(tw, "%s\t%s\n", site, strings.Join(deps.Registry.Domains(site), ", "))
	}
	fmt.Fprintf(tw, "%s\t(any other host)\n", deps.Registry.Generic().Site())
	return tw.Flush()
}
