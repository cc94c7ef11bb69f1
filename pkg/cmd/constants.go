package cmd

const (
	RootCmdName  = "carstats"
	RootCmdShort = "Query and summarize a collection of car records"
	RootCmdLong  = `carstats loads car records from a JSON file and answers read-only
queries over them: sorting, filtering, grouping and price/mileage statistics.`

	ListCmdName  = "list"
	ListCmdShort = "Print every car in file order"

	SortCmdName  = "sort"
	SortCmdShort = "Print the cars sorted by model, price, mileage or color"

	MileageCmdName  = "mileage"
	MileageCmdShort = "Print the cars driven more than a threshold"

	ColorsCmdName  = "colors"
	ColorsCmdShort = "Print the number of cars per color"

	ExpensiveByModelCmdName  = "expensive-by-model"
	ExpensiveByModelCmdShort = "Print the most expensive car of every model"

	MostExpensiveCmdName  = "most-expensive"
	MostExpensiveCmdShort = "Print every car sharing the highest price"

	ComponentsCmdName  = "components"
	ComponentsCmdShort = "Print the cars grouped by component"

	PriceRangeCmdName  = "price-range"
	PriceRangeCmdShort = "Print the cars priced within an inclusive range"

	SortedComponentsCmdName  = "sorted-components"
	SortedComponentsCmdShort = "Print the cars with their components sorted"

	StatsCmdName  = "stats"
	StatsCmdShort = "Print price and mileage statistics"
)
