package main

import (
	"time"

	"github.com/spf13/cobra"

	"stylepins/internal/catalog"
)

// dashboardView adds storage facts to the catalog totals.
type dashboardView struct {
	catalog.Dashboard `yaml:",inline"`

	LastSaved *time.Time `json:"lastSaved,omitempty" yaml:"lastSaved,omitempty"`
	ReadOnly  bool       `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Short:   "Show catalog totals and visit stats",
		Args:    cobra.NoArgs,
		PreRunE: a.requireAdmin,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := dashboardView{Dashboard: a.store.Dashboard(), ReadOnly: a.store.ReadOnly()}
			if a.persister != nil {
				ts, ok, err := a.persister.UpdatedAt(cmd.Context())
				if err != nil {
					return err
				}
				if ok {
					v.LastSaved = &ts
				}
			}

			d := v.Dashboard
			rows := [][]string{
				{"Today's visits", itoa(d.Stats.VisitsToday)},
				{"Yesterday", itoa(d.Stats.VisitsYesterday)},
				{"Weekly visits", itoa(d.Stats.VisitsWeek)},
				{"Monthly visits", itoa(d.Stats.VisitsMonth)},
				{"Images", itoa(d.TotalImages)},
				{"Clicks", itoa(d.TotalClicks)},
				{"Views", itoa(d.TotalViews)},
				{"Root categories", itoa(d.RootCategories)},
				{"Sub-categories", itoa(d.SubCategories)},
				{"Orphaned images", itoa(d.Orphaned)},
			}
			if v.LastSaved != nil {
				rows = append(rows, []string{"Last saved", v.LastSaved.UTC().Format(time.RFC3339)})
			}
			if v.ReadOnly {
				rows = append(rows, []string{"Storage", "unreadable, changes refused"})
			}
			return a.print(v, tableData{headers: []string{"METRIC", "VALUE"}, rows: rows})
		},
	}
}
