// Package azure wraps the Azure CLI behind a narrow App Service interface.
//
// All provider calls shell out to the az binary with JSON output and are
// isolated behind the AppServiceManager interface so the provisioning
// sequencer can be tested without a subscription. Error classification
// helpers map raw CLI failures onto the categories the sequencer cares
// about (already exists, name taken, not logged in).
package azure
