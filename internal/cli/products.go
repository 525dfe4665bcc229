package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/vape-store/internal/filter"
	"github.com/Lixing-Zhang/vape-store/internal/models"
	"github.com/Lixing-Zhang/vape-store/internal/output"
	"github.com/Lixing-Zhang/vape-store/internal/repository"
)

type productsOptions struct {
	categories  []string
	flavors     []string
	minPrice    int
	maxPrice    int
	minNicotine int
	maxNicotine int
}

func newProductsCommand(root *rootOptions) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"ls"},
		Short:   "List catalog products matching the filters",
		Example: `  storefront products --category vape --flavor Ягоды
  storefront products --max-price 1000 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(root.output)
			if err != nil {
				return err
			}

			engine := filter.NewEngine(repository.Catalog())
			if err := opts.apply(engine); err != nil {
				return err
			}
			return output.WriteProducts(cmd.OutOrStdout(), format, engine.VisibleProducts())
		},
	}

	defaultCategories := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		defaultCategories[i] = string(c)
	}

	cmd.Flags().StringSliceVarP(&opts.categories, "category", "c", defaultCategories, "Categories to include (comma-separated): cigarette,vape,liquid")
	cmd.Flags().StringSliceVarP(&opts.flavors, "flavor", "f", nil, "Flavors to include (comma-separated); none means any flavor")
	cmd.Flags().IntVar(&opts.minPrice, "min-price", models.PriceMin, "Minimum price")
	cmd.Flags().IntVar(&opts.maxPrice, "max-price", models.PriceMax, "Maximum price")
	cmd.Flags().IntVar(&opts.minNicotine, "min-nicotine", models.NicotineMin, "Minimum nicotine strength in mg")
	cmd.Flags().IntVar(&opts.maxNicotine, "max-nicotine", models.NicotineMax, "Maximum nicotine strength in mg")
	return cmd
}

// apply validates the flags and sets them on engine
func (o *productsOptions) apply(engine *filter.Engine) error {
	include := make(map[models.Category]bool, len(o.categories))
	for _, raw := range o.categories {
		c, err := models.ParseCategory(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		include[c] = true
	}

	flavors := make([]string, 0, len(o.flavors))
	for _, raw := range o.flavors {
		f := strings.TrimSpace(raw)
		if !models.ValidFlavor(f) {
			return fmt.Errorf("unknown flavor %q (known: %s)", f, strings.Join(models.Flavors, ", "))
		}
		flavors = append(flavors, f)
	}

	if o.minPrice > o.maxPrice {
		return fmt.Errorf("--min-price %d exceeds --max-price %d", o.minPrice, o.maxPrice)
	}
	if o.minNicotine > o.maxNicotine {
		return fmt.Errorf("--min-nicotine %d exceeds --max-nicotine %d", o.minNicotine, o.maxNicotine)
	}

	for _, c := range models.Categories {
		engine.SetCategorySelected(c, include[c])
	}
	for _, f := range flavors {
		engine.SetFlavorSelected(f, true)
	}
	engine.SetPriceRange(o.minPrice, o.maxPrice)
	engine.SetNicotineRange(o.minNicotine, o.maxNicotine)
	return nil
}

func newFeaturedCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List the products highlighted on the home page",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(root.output)
			if err != nil {
				return err
			}
			return output.WriteProducts(cmd.OutOrStdout(), format, filter.Featured(repository.Catalog()))
		},
	}
}

func newFiltersCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Show the available filter options",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(root.output)
			if err != nil {
				return err
			}
			return output.WriteFilterMetadata(cmd.OutOrStdout(), format, models.NewFilterMetadata())
		},
	}
}
