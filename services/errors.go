package services

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the upstream rejects
	// the email/password pair. Which of the two was wrong is never revealed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUploadedNoURL is returned by DocumentService.Upload when the blob
	// was stored but the signed URL could not be minted afterwards.
	ErrUploadedNoURL = errors.New("document uploaded but signed URL could not be created")
)
