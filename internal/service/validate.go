package service

import "github.com/go-playground/validator/v10"

// Shared schema validator for the create paths. The label PATCH path bypasses
// it on purpose; see LabelService.UpdateRaw.
var validate = validator.New()
