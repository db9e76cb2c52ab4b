/*

Package surveydata reads fixed-width government survey data files
described by Stata dictionary layouts, and provides helper routines
for working with the resulting data: uniform and weighted bootstrap
resampling, stratified resampling by year, random-draw imputation of
missing values, binning of numeric variables, and LOWESS-smoothed
scatterplots.

The data container is a simple column-oriented Series type with a
missing value mask.  A dataset is an array of Series objects, aligned
by row.  The reader parses the dictionary file to obtain column names,
character positions, and optional type directives, then slices each
record of the data file at the specified positions.  Readers can read
a file by chunks (ranges of consecutive records) to facilitate
processing of large files.

All randomized routines take an explicit random number generator so
that results can be reproduced.

*/
package surveydata
