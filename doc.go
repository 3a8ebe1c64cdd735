// Package gocreditprep prepares SME credit data for default-risk models.
//
// Raw loan records go through two stages. The clean stage drops income
// outliers with a skew-adjusted boxplot fence and normalizes sector names.
// The prepare stage derives debt ratios, encodes the bureau grade, balances
// defaulted and non-defaulted loans and splits the result into stratified
// train and test sets.
//
// # Features
//
//   - Tabular loading and saving of CSV data with null handling
//   - Exact medcouple and the Hubert-Vandervieren adjusted fence
//   - Outlier removal that always keeps rows with a missing value
//   - Column-name correction through a caller-supplied resolver
//   - Stratified class balancing and train/test splitting with fixed seeds
//   - YAML configuration and a command line front end
//
// # Quick Start
//
// Remove outliers from a column:
//
//	t, _ := table.LoadCSV("data/raw/covalto_sme_credit_data.csv", nil)
//	kept, _ := clean.RemoveOutliers(t, "ingresos_anuales_mxn")
//
// Balance the classes and split:
//
//	balanced, _ := sampling.Balance(kept, "default_12m", "sector_industrial", 43)
//	train, test, _ := sampling.Split(balanced, "default_12m", 0.03, 42)
//
// Or run both stages from a configuration file:
//
//	creditprep --config creditprep.yaml run
//
// # Packages
//
//   - table: Table type, CSV input/output and input normalization
//   - stats: Quantiles, medcouple, fences and column descriptions
//   - clean: Outlier removal, category normalization and column retries
//   - features: Ratio features, ordinal encoding and feature selection
//   - sampling: Stratified shuffle split, class balancing and train/test split
//   - pipeline: Configuration and orchestration of both stages
//
// # References
//
//   - Hubert, M., & Vandervieren, E. (2008). An adjusted boxplot for skewed distributions
//   - Brys, G., Hubert, M., & Struyf, A. (2004). A robust measure of skewness
package gocreditprep
