package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"leave-desk-backend/config"
	"leave-desk-backend/initializers"
	auditarchive "leave-desk-backend/lib/audit-archive"
	xlsexport "leave-desk-backend/lib/export/xls"
	leaverequesthandler "leave-desk-backend/lib/leave-request"
	lookupcache "leave-desk-backend/lib/lookup-cache"
	sessionhandler "leave-desk-backend/lib/session"
	tasklog "leave-desk-backend/lib/task-log"
	authutils "leave-desk-backend/lib/utils/auth-utils"
	"leave-desk-backend/models"
	s3client "leave-desk-backend/s3"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "requestctl",
	Short: "Leave Desk request log administration",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(log.WarnLevel)
		config.InitConfig()
		initializers.InitDBConnection()
		initializers.InitSmtp()
		initializers.InitDomainServices(cmd.Context())
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	registerCommands()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func registerCommands() {
	rootCmd.AddCommand(listCmd("pending", "Pending requests, newest first", func(ctx context.Context) []models.RequestRecord {
		return leaverequesthandler.Instance.ListPending(ctx)
	}))
	rootCmd.AddCommand(listCmd("history", "Decided requests, newest first", func(ctx context.Context) []models.RequestRecord {
		return leaverequesthandler.Instance.ListHistory(ctx)
	}))
	rootCmd.AddCommand(listCmd("all", "All requests, newest first", func(ctx context.Context) []models.RequestRecord {
		return leaverequesthandler.Instance.ListAll(ctx)
	}))
	rootCmd.AddCommand(mineCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(decideCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(cacheCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(archiveCmd())
}

func listCmd(use, short string, list func(ctx context.Context) []models.RequestRecord) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderRequests(cmd.OutOrStdout(), list(cmd.Context()))
		},
	}
}

func mineCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Requests of one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			return renderRequests(cmd.OutOrStdout(), leaverequesthandler.Instance.ListByEmail(cmd.Context(), email))
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "employee email")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <rid>",
		Short: "Show one request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := leaverequesthandler.Instance.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderRequests(cmd.OutOrStdout(), []models.RequestRecord{rec})
		},
	}
}

func decideCmd() *cobra.Command {
	var decision, comment string
	cmd := &cobra.Command{
		Use:   "decide <rid>",
		Short: "Approve or reject a request and notify the employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseDecision(decision)
			if err != nil {
				return err
			}
			rec, result, err := leaverequesthandler.Instance.DecideOnce(cmd.Context(), args[0], status, comment)
			if err != nil {
				return err
			}
			if err = renderRequests(cmd.OutOrStdout(), []models.RequestRecord{rec}); err != nil {
				return err
			}
			if !jsonOutput {
				fmt.Fprintln(cmd.OutOrStdout(), "notification:", result)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&decision, "decision", "", "APPROVE/DENY or APPROVED/REJECTED")
	cmd.Flags().StringVar(&comment, "comment", "", "manager comment")
	return cmd
}

func tasksCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []models.TaskEntry
			if email != "" {
				list = tasklog.Instance.ListByEmail(cmd.Context(), email)
			} else {
				list = tasklog.Instance.List(cmd.Context())
			}
			return renderTasks(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "employee email")
	return cmd
}

func cacheCmd() *cobra.Command {
	cache := &cobra.Command{Use: "cache", Short: "Inspect the last-known-good lookup cache"}
	cache.AddCommand(&cobra.Command{
		Use:   "show <dataset>",
		Short: "Print cached rows of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, ok := lookupcache.Instance.Cached(args[0])
			if !ok {
				return errors.Errorf("no cached data for %q", args[0])
			}
			return renderGrid(cmd.OutOrStdout(), grid)
		},
	})
	cache.AddCommand(&cobra.Command{
		Use:   "clear <dataset>",
		Short: "Drop the cached copy of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookupcache.Instance.Invalidate(args[0])
		},
	})
	return cache
}

func tokenCmd() *cobra.Command {
	var email, name string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for an identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			if config.Conf.Auth.JWTSecret == "" {
				return errors.New("JWT_SECRET is not configured")
			}
			token, err := authutils.GetToken(config.Conf.Auth.JWTSecret, sessionhandler.Identity{Email: email, Name: name}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "identity email")
	cmd.Flags().StringVar(&name, "name", "", "identity display name")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Upload a request and task log snapshot to S3 now",
		RunE: func(cmd *cobra.Command, args []string) error {
			initializers.InitS3(cmd.Context())
			if s3client.Instance == nil {
				return errors.New("S3 is not configured")
			}
			name, err := auditarchive.NewInstance(leaverequesthandler.Instance, tasklog.Instance, xlsexport.Instance, s3client.Instance).Archive(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func parseDecision(value string) (models.RequestStatus, error) {
	if status, ok := models.StatusForAction(value); ok {
		return status, nil
	}
	status := models.ParseRequestStatus(value)
	if strings.TrimSpace(value) == "" || !status.IsDecision() {
		return "", errors.Wrapf(models.ErrValidationFailed, "unknown decision %q", value)
	}
	return status, nil
}

func renderRequests(w io.Writer, list []models.RequestRecord) error {
	if jsonOutput {
		return writeJSON(w, list)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Request ID", "Status", "Employee", "Type", "Dates", "Out", "In", "Submitted"})
	for _, rec := range list {
		kind := rec.LeaveType
		if kind == "" {
			kind = rec.PermissionType
		}
		tw.AppendRow(table.Row{rec.RequestID, rec.Status.ToHuman(), rec.EmployeeName, kind, rec.Dates(), rec.RequestedOutTime, rec.RequestedInTime, rec.Timestamp})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "", "Total", len(list)})
	tw.Render()
	return nil
}

func renderTasks(w io.Writer, list []models.TaskEntry) error {
	if jsonOutput {
		return writeJSON(w, list)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Submitted", "Employee", "Company", "Platform", "Task", "Quantity", "Claimed"})
	for _, entry := range list {
		tw.AppendRow(table.Row{entry.Timestamp, entry.EmployeeName, entry.Company, entry.Platform, entry.TaskKind, entry.Quantity, entry.ClaimedQuantity})
	}
	tw.Render()
	return nil
}

func renderGrid(w io.Writer, grid [][]string) error {
	if jsonOutput {
		return writeJSON(w, grid)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	for _, row := range grid {
		cells := make(table.Row, 0, len(row))
		for _, value := range row {
			cells = append(cells, value)
		}
		tw.AppendRow(cells)
	}
	tw.Render()
	return nil
}

func writeJSON(w io.Writer, value interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
