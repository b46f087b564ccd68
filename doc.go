// Package crowdfolio computes portfolio analytics over the transaction
// export of a crowdfunding investment platform.
//
// The package is organized around a single immutable set of transactions:
//   - Normalization: DecodeCSV reads an export file into raw records and
//     Normalize turns them into Transactions, dropping and counting the rows
//     whose date or amount cannot be read.
//   - Taxonomy: every Transaction has a Kind, derived from the export's type
//     label, which decides how it contributes to each formula.
//   - Aggregation: stateless functions fold transactions into an Overview,
//     project rows, period rows, advanced statistics and breakdowns. They all
//     accept an empty input and never return NaN or infinite values.
//   - Filtering: Criteria and Filter select the subset of transactions that
//     the aggregations run on.
//
// Formatting of amounts for display (FormatAmount) lives here too, since
// its rounding decides what totals read like.
//
// This package serves as the foundational logic for the `cfo` command-line
// tool.
package crowdfolio
