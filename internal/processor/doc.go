// Package processor contains the application logic behind the tossicat
// command. It resolves single word/particle pairs, sentence templates and
// batch files, prints results in the selected output mode, and hands the
// collected results to the CSV or SQLite exporters.
package processor
