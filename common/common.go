package common

import (
	"github.com/minio/minio-go/v7"
	"github.com/sinaridesa/sinari-api/type/shared"
	"gopkg.in/gomail.v2"
)

var Config *shared.Config
var MinIOClient *minio.Client
var Dialer *gomail.Dialer
