// Package command provides the CLI commands of velocity-config.
//
// velocity-config inspects a proxy configuration document without
// starting the proxy:
//
//	velocity-config check velocity.toml
//	velocity-config show -o yaml velocity.toml
//	velocity-config motd --format json velocity.toml
//
// Commands never look for a document on their own; the path is always
// given as an argument.
package command
