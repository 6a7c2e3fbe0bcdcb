package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/session"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform moderation (admin role required)",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List platform users",
	RunE:  runAdminUsers,
}

var adminUserStatusCmd = &cobra.Command{
	Use:   "user-status <id> <ACTIVE|SUSPENDED|VERIFIED>",
	Short: "Change a user's account status",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminUserStatus,
}

var adminPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List all listings, optionally by moderation status",
	RunE:  runAdminProperties,
}

var adminPropertyStatusCmd = &cobra.Command{
	Use:   "property-status <id> <LIVE|REJECTED>",
	Short: "Approve or reject a listing",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminPropertyStatus,
}

var adminVerificationsCmd = &cobra.Command{
	Use:   "verifications",
	Short: "Show the pending identity verification queue",
	RunE:  runAdminVerifications,
}

var adminVerifyCmd = &cobra.Command{
	Use:   "verify <id> <APPROVE|REJECT>",
	Short: "Resolve a pending identity verification",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminVerify,
}

var adminReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List user-filed reports",
	RunE:  runAdminReports,
}

var adminFeaturedCmd = &cobra.Command{
	Use:   "featured [id...]",
	Short: "Show or replace the curated homepage listings",
	RunE:  runAdminFeatured,
}

func init() {
	adminUsersCmd.Flags().Int("page", 0, "page number, starting at 0")
	adminUsersCmd.Flags().Int("size", 20, "page size")
	adminPropertiesCmd.Flags().String("status", "", "filter by moderation status (PENDING, LIVE, REJECTED)")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminUserStatusCmd)
	adminCmd.AddCommand(adminPropertiesCmd)
	adminCmd.AddCommand(adminPropertyStatusCmd)
	adminCmd.AddCommand(adminVerificationsCmd)
	adminCmd.AddCommand(adminVerifyCmd)
	adminCmd.AddCommand(adminReportsCmd)
	adminCmd.AddCommand(adminFeaturedCmd)
	rootCmd.AddCommand(adminCmd)
}

// requireAdmin checks the persisted role before issuing any request, the
// same short-circuit the backend would answer with a 403.
func requireAdmin(store session.Store) error {
	gate := session.NewGate(store)
	if !gate.IsAuthenticated() {
		return fmt.Errorf("not signed in; run `rentctl login` first")
	}
	if !gate.HasRole(session.RoleAdmin) {
		return fmt.Errorf("admin role required")
	}
	return nil
}

func runAdminUsers(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")

	resp, err := client.Admin.Users(cmd.Context(), page, size)
	if err != nil {
		return fmt.Errorf("listing users: %s", rentora.ErrorMessage(err))
	}

	for _, u := range resp.Content {
		fmt.Printf("%6d  %-30s  %-10s  %s\n",
			u.ID, truncate(u.Email, 30), u.Role, u.Status)
	}
	fmt.Printf("Page %d of %d (%d total)\n", resp.Number+1, resp.TotalPages, resp.TotalElements)
	return nil
}

func runAdminUserStatus(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	status := session.UserStatus(strings.ToUpper(args[1]))
	switch status {
	case session.UserStatusActive, session.UserStatusSuspended, session.UserStatusVerified:
	default:
		return fmt.Errorf("unknown status %q", args[1])
	}

	if err := client.Admin.UpdateUserStatus(cmd.Context(), id, status); err != nil {
		return fmt.Errorf("updating user status: %s", rentora.ErrorMessage(err))
	}
	fmt.Printf("User %d is now %s.\n", id, status)
	return nil
}

func runAdminProperties(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	statusFlag, _ := cmd.Flags().GetString("status")
	status := rentora.PropertyStatus(strings.ToUpper(statusFlag))

	props, err := client.Admin.Properties(cmd.Context(), status)
	if err != nil {
		return fmt.Errorf("listing properties: %s", rentora.ErrorMessage(err))
	}

	for _, p := range props {
		fmt.Printf("%6d  %-40s  %-10s  landlord %d\n",
			p.ID, truncate(p.Title, 40), p.Status, p.LandlordID)
	}
	return nil
}

func runAdminPropertyStatus(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid property id %q", args[0])
	}
	status := rentora.PropertyStatus(strings.ToUpper(args[1]))
	switch status {
	case rentora.PropertyStatusLive, rentora.PropertyStatusRejected:
	default:
		return fmt.Errorf("status must be LIVE or REJECTED, got %q", args[1])
	}

	if err := client.Admin.UpdatePropertyStatus(cmd.Context(), id, status); err != nil {
		return fmt.Errorf("updating property status: %s", rentora.ErrorMessage(err))
	}
	fmt.Printf("Property %d is now %s.\n", id, status)
	return nil
}

func runAdminVerifications(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	pending, err := client.Admin.PendingVerifications(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing verifications: %s", rentora.ErrorMessage(err))
	}
	if len(pending) == 0 {
		fmt.Println("No pending verifications.")
		return nil
	}

	for _, v := range pending {
		email := ""
		if v.User != nil {
			email = v.User.Email
		}
		fmt.Printf("%6d  %-30s  %s\n", v.ID, truncate(email, 30), v.Status)
	}
	return nil
}

func runAdminVerify(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid verification id %q", args[0])
	}
	action := rentora.VerificationAction(strings.ToUpper(args[1]))
	switch action {
	case rentora.VerificationApprove, rentora.VerificationReject:
	default:
		return fmt.Errorf("action must be APPROVE or REJECT, got %q", args[1])
	}

	if err := client.Admin.ResolveVerification(cmd.Context(), id, action); err != nil {
		return fmt.Errorf("resolving verification: %s", rentora.ErrorMessage(err))
	}
	fmt.Printf("Verification %d: %s.\n", id, action)
	return nil
}

func runAdminReports(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	reports, err := client.Admin.Reports(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing reports: %s", rentora.ErrorMessage(err))
	}
	if len(reports) == 0 {
		fmt.Println("No reports.")
		return nil
	}

	for _, r := range reports {
		fmt.Printf("%6d  %-10s %-6d  %-10s  %s\n",
			r.ID, r.TargetType, r.TargetID, r.Status, truncate(r.Reason, 50))
	}
	return nil
}

func runAdminFeatured(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := requireAdmin(store); err != nil {
		return err
	}

	if len(args) == 0 {
		props, err := client.Admin.FeaturedProperties(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing featured properties: %s", rentora.ErrorMessage(err))
		}
		for _, p := range props {
			fmt.Printf("%6d  %s\n", p.ID, truncate(p.Title, 50))
		}
		return nil
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid property id %q", arg)
		}
		ids = append(ids, id)
	}
	if err := client.Admin.UpdateFeaturedProperties(cmd.Context(), ids); err != nil {
		return fmt.Errorf("updating featured properties: %s", rentora.ErrorMessage(err))
	}
	fmt.Printf("Featured list replaced with %d properties.\n", len(ids))
	return nil
}
