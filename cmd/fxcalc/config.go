package main

const (
	DefaultCatalogPath     = "symbols.yaml"
	DefaultVolume          = "0.01"
	DefaultLeverage        = 100
	DefaultAccountCurrency = "USD"
)
