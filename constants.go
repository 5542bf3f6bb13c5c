package main

import "time"

// Output formats
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
	yamlOutputFormat  = "yaml"
	csvOutputFormat   = "csv"
)

const (
	standardMargin = 2
	// takenHeight is the room reserved for the title and help lines
	takenHeight     = 5
	mutationTimeout = 10 * time.Second
	logFileName     = "zenwallet.log"
)

// Session states
type sessionState int

const (
	overviewState sessionState = iota
	transactions
	transactionForm
	incomeForm
	confirmClear
	trendState
	configView
)

func (ss sessionState) String() string {
	switch ss {
	case overviewState:
		return "overview"
	case transactions:
		return "transactions"
	case transactionForm:
		return "transaction form"
	case incomeForm:
		return "fixed income"
	case confirmClear:
		return "clear all"
	case trendState:
		return "year trend"
	case configView:
		return "configuration"
	}

	return "unknown"
}
