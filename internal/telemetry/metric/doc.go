// Package metric provides Prometheus metrics for configuration checks.
//
// The proxy configuration tool runs once and exits, so metrics are not
// scraped over HTTP. Instead a Registry is filled while a document is
// checked and written out in the text exposition format for the node
// exporter textfile collector:
//
//	velocity_config_loads_total{result="ok|error"}
//	velocity_config_load_duration_seconds
//	velocity_config_valid
//	velocity_config_servers
//	velocity_config_fallback_servers
//	velocity_config_validation_issues{check}
package metric
