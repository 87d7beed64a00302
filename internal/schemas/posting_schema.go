package schemas

// postingSchema is the JSON Schema for job posting payloads. Kept inline so
// the binary carries no runtime file dependency.
const postingSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "JobPosting",
  "type": "object",
  "properties": {
    "title": { "type": "string", "maxLength": 200 },
    "primary_listing": { "$ref": "#/definitions/listing" },
    "additional_listings": {
      "type": "array",
      "items": { "$ref": "#/definitions/listing" },
      "maxItems": 20
    },
    "organization": {
      "type": "object",
      "properties": {
        "name": { "type": "string", "maxLength": 200 },
        "address": { "type": "string", "maxLength": 500 },
        "email": { "type": "string", "maxLength": 254 },
        "phone": { "type": "string", "maxLength": 32 }
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false,
  "definitions": {
    "listing": {
      "type": "object",
      "properties": {
        "position_title": { "type": "string", "maxLength": 200 },
        "openings_count": { "type": "integer", "minimum": 0 },
        "experience_requirement": { "type": "string", "maxLength": 200 },
        "key_requirements": { "type": "string", "maxLength": 2000 }
      },
      "additionalProperties": false
    }
  }
}`
