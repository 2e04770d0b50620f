// Package models defines client-side data models used by authclient.
package models
