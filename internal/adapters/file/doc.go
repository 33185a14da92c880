// Package file provides YAML file backed catalog and quiz sources.
package file
