// Package services holds the typed resource wrappers over the HTTP
// adapter: contacts, tasks, projects, interactions, and users. Each method
// is a direct pass-through to a fixed path and verb; adapter errors
// propagate unchanged. The only client-side checks are required-field
// validations on create/update payloads, which fail before any network
// activity.
package services
