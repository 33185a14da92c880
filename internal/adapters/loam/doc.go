// Package loam loads catalog resources from a Loam document repository,
// so subject content can live as reviewable markdown files.
package loam
