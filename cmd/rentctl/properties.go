package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/resource"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Browse the property catalogue",
}

var propertiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties matching a filter",
	RunE:  runPropertiesList,
}

var propertiesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single property",
	Args:  cobra.ExactArgs(1),
	RunE:  runPropertiesGet,
}

func init() {
	f := propertiesListCmd.Flags()
	f.String("address", "", "filter by address substring")
	f.Float64("min-price", 0, "minimum annual price")
	f.Float64("max-price", 0, "maximum annual price")
	f.Int("min-bedrooms", 0, "minimum bedrooms")
	f.Int("max-bedrooms", 0, "maximum bedrooms")
	f.Int("page", 0, "page number, starting at 0")
	f.Int("size", 10, "page size")

	propertiesCmd.AddCommand(propertiesListCmd)
	propertiesCmd.AddCommand(propertiesGetCmd)
	rootCmd.AddCommand(propertiesCmd)
}

func runPropertiesList(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	f := cmd.Flags()
	filter := &rentora.PropertyFilter{}
	filter.Address, _ = f.GetString("address")
	filter.MinPrice, _ = f.GetFloat64("min-price")
	filter.MaxPrice, _ = f.GetFloat64("max-price")
	filter.MinBedrooms, _ = f.GetInt("min-bedrooms")
	filter.MaxBedrooms, _ = f.GetInt("max-bedrooms")
	page, _ := f.GetInt("page")
	size, _ := f.GetInt("size")

	listing := resource.NewPaged(func(ctx context.Context, page, size int) (resource.PageData[rentora.Property], error) {
		resp, err := client.Properties.List(ctx, filter, page, size)
		if err != nil {
			return resource.PageData[rentora.Property]{}, err
		}
		return resource.PageData[rentora.Property]{
			Items:         resp.Content,
			TotalPages:    resp.TotalPages,
			TotalElements: resp.TotalElements,
		}, nil
	}, size)

	st := listing.SetPage(cmd.Context(), page)
	if st.Err != "" {
		return fmt.Errorf("listing properties: %s", st.Err)
	}

	for _, p := range st.Data.Items {
		fmt.Printf("%6d  %-40s  %-24s  %8.0f/yr  %dbd/%dba\n",
			p.ID, truncate(p.Title, 40), truncate(p.Address, 24),
			p.AnnualPrice, p.Bedrooms, p.Bathrooms)
	}
	fmt.Printf("Page %d of %d (%d total)\n",
		listing.Page()+1, st.Data.TotalPages, st.Data.TotalElements)
	return nil
}

func runPropertiesGet(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid property id %q", args[0])
	}

	p, err := client.Properties.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("fetching property: %s", rentora.ErrorMessage(err))
	}

	fmt.Printf("#%d %s\n", p.ID, p.Title)
	fmt.Printf("  Address:   %s\n", p.Address)
	fmt.Printf("  Price:     %.0f/yr", p.AnnualPrice)
	if p.NightlyPrice > 0 {
		fmt.Printf(" (%.0f/night)", p.NightlyPrice)
	}
	fmt.Println()
	fmt.Printf("  Rooms:     %d bedrooms, %d bathrooms\n", p.Bedrooms, p.Bathrooms)
	if p.Status != "" {
		fmt.Printf("  Status:    %s\n", p.Status)
	}
	if p.NumberOfReviews > 0 {
		fmt.Printf("  Rating:    %.1f (%d reviews)\n", p.AverageRating, p.NumberOfReviews)
	}
	if p.Description != "" {
		fmt.Printf("  %s\n", p.Description)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
