// Package main provides the faro binary: a local front for the anonymized
// incident-report engine. It fills the role of the UI layer — building
// report templates, anonymizing coordinates before submission, and rendering
// query results — without any network surface.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/faro-app/backend/internal/config"
	"github.com/faro-app/backend/internal/geo"
	"github.com/faro-app/backend/internal/logger"
	"github.com/faro-app/backend/internal/models"
	"github.com/faro-app/backend/internal/query"
	"github.com/faro-app/backend/internal/storage"
	"github.com/faro-app/backend/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	logger.Initialize()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables", nil)
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore builds a ReportStore on the configured snapshot backend and
// loads the persisted collection.
func openStore(cfg *config.Config) (*store.ReportStore, error) {
	var snapshots store.SnapshotStore
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := storage.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := storage.AutoMigrate(db); err != nil {
			return nil, err
		}
		snapshots = storage.NewPostgresSnapshotStore(db)
	case config.BackendFile:
		snapshots = storage.NewFileSnapshotStore(cfg.SnapshotPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	rs := store.NewReportStore(store.WithSnapshotStore(snapshots))
	if err := rs.LoadSnapshot(); err != nil {
		return nil, err
	}
	return rs, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faro",
		Short: "Community incident-report engine",
		Long: `Faro maintains an anonymized collection of community-submitted
enforcement-sighting reports and answers proximity, recency and severity
queries over it. Coordinates are jittered before they are ever stored.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		submitCmd(),
		noteCmd(),
		verifyCmd(),
		markVerifiedCmd(),
		flagCmd(),
		resolveCmd(),
		getCmd(),
		listCmd(),
		nearCmd(),
		statsCmd(),
	)
	return cmd
}

func submitCmd() *cobra.Command {
	var (
		reportType  string
		severity    string
		description string
		address     string
		lat         float64
		lon         float64
		hasCoords   bool
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new incident report",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}

			location := models.Location{Address: address}
			if hasCoords {
				// Raw device coordinates never reach the store; they are
				// jittered at the submission privacy bar first.
				anonymized, err := geo.Anonymize(models.Coordinates{Latitude: lat, Longitude: lon}, geo.SubmitRadiusMeters)
				if err != nil {
					return err
				}
				location.Coordinates = &anonymized
				location.Approximate = true
			}

			report, err := rs.Submit(models.ReportTemplate{
				Type:        models.ReportType(reportType),
				Severity:    models.ReportSeverity(severity),
				Description: description,
				Location:    location,
				Tags:        tags,
			})
			if err != nil {
				return err
			}
			if err := rs.Flush(); err != nil {
				return err
			}
			return printJSON(report)
		},
	}

	cmd.Flags().StringVar(&reportType, "type", "", "Report type (ice_activity, checkpoint, raid, surveillance, arrest, patrol)")
	cmd.Flags().StringVar(&severity, "severity", "", "Severity (low, medium, high, critical)")
	cmd.Flags().StringVar(&description, "description", "", "What was observed")
	cmd.Flags().StringVar(&address, "address", "", "Free-text location description")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the sighting")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude of the sighting")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags for filtering (repeatable)")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("severity")
	cmd.MarkFlagRequired("description")

	cmd.PreRun = func(c *cobra.Command, args []string) {
		hasCoords = c.Flags().Changed("lat") && c.Flags().Changed("lon")
	}
	return cmd
}

func noteCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "note <report-id>",
		Short: "Attach an anonymous community note to a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			note, err := rs.AddNote(args[0], content)
			if err != nil {
				return err
			}
			if err := rs.Flush(); err != nil {
				return err
			}
			return printJSON(note)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Note text")
	cmd.MarkFlagRequired("content")
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <report-id>",
		Short: "Record one more independent confirmation of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			report, err := rs.Verify(args[0])
			if err != nil {
				return err
			}
			if err := rs.Flush(); err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func markVerifiedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-verified <report-id>",
		Short: "Transition a report's status to verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			report, err := rs.MarkVerified(args[0])
			if err != nil {
				return err
			}
			if err := rs.Flush(); err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func flagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flag <report-id>",
		Short: "Transition a report's status to flagged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			report, err := rs.Flag(args[0])
			if err != nil {
				return err
			}
			if err := rs.Flush(); err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <report-id>",
		Short: "Close out a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			report, err := rs.Resolve(args[0])
			if err != nil {
				return err
			}
			if err := rs.Flush(); err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <report-id>",
		Short: "Show a single report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			report, err := rs.Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func listCmd() *cobra.Command {
	var (
		activeOnly   bool
		criticalOnly bool
		reportType   string
		severity     string
		recentHours  float64
		verifiedMin  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			engine := query.NewEngine()
			reports := rs.All()

			if activeOnly {
				reports = engine.ActiveReports(reports)
			}
			if criticalOnly {
				reports = engine.CriticalActiveReports(reports)
			}
			if reportType != "" {
				reports = engine.ReportsByType(reports, models.ReportType(reportType))
			}
			if severity != "" {
				reports = engine.ReportsBySeverity(reports, models.ReportSeverity(severity))
			}
			if cmd.Flags().Changed("recent-hours") {
				reports, err = engine.RecentReports(reports, recentHours)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("verified-min") {
				reports = engine.VerifiedReports(reports, verifiedMin)
			}
			return printJSON(reports)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active reports")
	cmd.Flags().BoolVar(&criticalOnly, "critical", false, "Only critical active reports")
	cmd.Flags().StringVar(&reportType, "type", "", "Filter by report type")
	cmd.Flags().StringVar(&severity, "severity", "", "Filter by severity")
	cmd.Flags().Float64Var(&recentHours, "recent-hours", query.DefaultRecentHours, "Only reports newer than this many hours")
	cmd.Flags().IntVar(&verifiedMin, "verified-min", query.DefaultVerifiedMinCount, "Only reports with at least this many verifications")
	return cmd
}

func nearCmd() *cobra.Command {
	var (
		lat      float64
		lon      float64
		radiusKm float64
	)

	cmd := &cobra.Command{
		Use:   "near",
		Short: "List reports within a radius of a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			reports, err := query.NewEngine().ReportsNearLocation(rs.All(), lat, lon, radiusKm)
			if err != nil {
				return err
			}
			return printJSON(reports)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the search center")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude of the search center")
	cmd.Flags().Float64Var(&radiusKm, "radius-km", 0, "Search radius in kilometers")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")
	cmd.MarkFlagRequired("radius-km")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the report collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := openStore(config.Load())
			if err != nil {
				return err
			}
			return printJSON(query.NewEngine().Stats(rs.All()))
		},
	}
}
