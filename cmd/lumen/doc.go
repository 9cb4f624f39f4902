// Command lumen builds a static light-direction viewer site from a sample
// dataset, joins solver quality reports for confidence scores, and keeps a
// local history of build runs.
package main
