package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nekruzvatanshoev/carstats/pkg/carstats/dal"
	"github.com/nekruzvatanshoev/carstats/pkg/carstats/output"
	"github.com/nekruzvatanshoev/carstats/pkg/carstats/service"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   ListCmdName,
		Short: ListCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			f := opts.formatter(cmd)
			if f.Format == output.FormatText {
				if svc.Len() == 0 {
					return nil
				}
				return f.Print(svc)
			}
			return f.Print(svc.Cars())
		}),
	}
}

func newSortCmd(opts *rootOptions) *cobra.Command {
	var (
		by      string
		reverse bool
	)
	cmd := &cobra.Command{
		Use:   SortCmdName,
		Short: SortCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			criteria, err := dal.ParseSortCriteria(by)
			if err != nil {
				return err
			}
			cars, err := svc.SortBy(criteria, reverse)
			if err != nil {
				return err
			}
			return opts.formatter(cmd).Print(cars)
		}),
	}
	cmd.Flags().StringVar(&by, "by", string(dal.SortByPrice), "field to sort by (model|price|mileage|color)")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending order")
	return cmd
}

func newMileageCmd(opts *rootOptions) *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   MileageCmdName,
		Short: MileageCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			cars, err := svc.CarsWithMileageGreaterThan(threshold)
			if err != nil {
				return err
			}
			return opts.formatter(cmd).Print(cars)
		}),
	}
	cmd.Flags().IntVar(&threshold, "gt", 0, "print cars with mileage strictly greater than this")
	return cmd
}

func newColorsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   ColorsCmdName,
		Short: ColorsCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			return opts.formatter(cmd).Print(svc.ColorCounts())
		}),
	}
}

func newExpensiveByModelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   ExpensiveByModelCmdName,
		Short: ExpensiveByModelCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			return opts.formatter(cmd).Print(svc.MostExpensiveByModel())
		}),
	}
}

func newMostExpensiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   MostExpensiveCmdName,
		Short: MostExpensiveCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			cars, err := svc.MostExpensiveCars()
			if err != nil {
				return err
			}
			return opts.formatter(cmd).Print(cars)
		}),
	}
}

func newComponentsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   ComponentsCmdName,
		Short: ComponentsCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			return opts.formatter(cmd).Print(svc.CarsGroupedByComponent())
		}),
	}
}

func newPriceRangeCmd(opts *rootOptions) *cobra.Command {
	var low, high string
	cmd := &cobra.Command{
		Use:   PriceRangeCmdName,
		Short: PriceRangeCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			from, err := validatePrice("low", low)
			if err != nil {
				return err
			}
			to, err := validatePrice("high", high)
			if err != nil {
				return err
			}
			cars, err := svc.CarsWithPriceBetween(from, to)
			if err != nil {
				return err
			}
			return opts.formatter(cmd).Print(cars)
		}),
	}
	cmd.Flags().StringVar(&low, "low", "", "lowest price, inclusive")
	cmd.Flags().StringVar(&high, "high", "", "highest price, inclusive")
	cmd.MarkFlagRequired("low")
	cmd.MarkFlagRequired("high")
	return cmd
}

func newSortedComponentsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   SortedComponentsCmdName,
		Short: SortedComponentsCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			return opts.formatter(cmd).Print(svc.CarsWithSortedComponents())
		}),
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   StatsCmdName,
		Short: StatsCmdShort,
		Args:  cobra.NoArgs,
		RunE: opts.query(func(cmd *cobra.Command, svc *service.Service) error {
			return opts.formatter(cmd).Print(svc.Statistics())
		}),
	}
}

func validatePrice(name, raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s price %q is not a number", dal.ErrInvalidArgument, name, raw)
	}
	return price, nil
}
