// Package seed implements the bulk content importer behind the seed command.
// It replaces the studio's one-off migration scripts: page documents are read
// from disk, validated against a schema, and upserted into the dataset.
package seed

// pageSchema validates page documents before any write reaches the dataset.
// Section objects require only a variant discriminator: unknown variants are
// legal content (the composer skips them at render time), so the importer
// must not reject them.
const pageSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Page document",
  "type": "object",
  "required": ["slug", "title"],
  "properties": {
    "slug": {
      "type": "string",
      "minLength": 1,
      "pattern": "^[a-z0-9]+(?:[/-][a-z0-9]+)*$"
    },
    "title": {
      "type": "string",
      "minLength": 1
    },
    "seo": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "description": {"type": "string"},
        "og_image": {"type": "string"},
        "no_index": {"type": "boolean"}
      },
      "additionalProperties": false
    },
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "anyOf": [
          {"required": ["variant"], "properties": {"variant": {"type": "string", "minLength": 1}}},
          {"required": ["_type"], "properties": {"_type": {"type": "string", "minLength": 1}}}
        ]
      }
    }
  },
  "additionalProperties": false
}`

// navigationSchema validates the singleton navigation document.
const navigationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Navigation document",
  "type": "object",
  "required": ["navigation"],
  "properties": {
    "navigation": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "href": {"type": "string"}
        }
      }
    }
  },
  "additionalProperties": false
}`
