package main

type uploadResponse struct {
	BatchID           string   `json:"batchId"`
	FileName          string   `json:"fileName"`
	TotalRows         int      `json:"totalRows"`
	NewTransactions   int      `json:"newTransactions"`
	DuplicatesSkipped int      `json:"duplicatesSkipped"`
	IgnoredNoMoneyIn  int      `json:"ignoredNoMoneyIn"`
	Success           bool     `json:"success"`
	Errors            []string `json:"errors,omitempty"`
}

type matchResponse struct {
	Success             bool     `json:"success"`
	TotalProcessed      int      `json:"totalProcessed"`
	MatchedCount        int      `json:"matchedCount"`
	UnmatchedCount      int      `json:"unmatchedCount"`
	TotalAmount         string   `json:"totalAmount"`
	UnmatchedReferences []string `json:"unmatchedReferences,omitempty"`
	Errors              []string `json:"errors,omitempty"`
}

type transactionResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	MoneyIn     string `json:"moneyIn"`
}
