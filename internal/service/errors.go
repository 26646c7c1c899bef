package service

import "errors"

var (
	ErrDownloadAlreadyRunning    = errors.New("download already running")
	ErrNoEarliestRelevantPackage = errors.New("no earliest relevant package")

	// ErrIdentification marks a downloaded package without a version tag.
	ErrIdentification = errors.New("package has no eTag")
	// ErrVerification marks a package whose signature does not verify. It is
	// absorbed by the downloader: the package is skipped, the cycle goes on.
	ErrVerification    = errors.New("package signature verification failed")
	ErrPackageDecoding = errors.New("package could not be decoded")

	ErrInvalidTransmissionRiskLevel = errors.New("transmission risk level must be between 1 and 8")

	ErrEmptyLocationID     = errors.New("checkin has no location id")
	ErrEmptyCheckinStart   = errors.New("checkin has no start date")
	ErrCheckinEndsTooEarly = errors.New("checkin ends before it starts")
)
