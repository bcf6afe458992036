package controllers

// CLILayerFromFlags exports cliLayerFromFlags for testing.
var CLILayerFromFlags = cliLayerFromFlags //nolint:gochecknoglobals // test export

// ParseTrackedItems exports parseTrackedItems for testing.
var ParseTrackedItems = parseTrackedItems //nolint:gochecknoglobals // test export
