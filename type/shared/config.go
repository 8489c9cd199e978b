package shared

type Config struct {
	Environment    *bool     `yaml:"environment" validate:"required"`
	Port           *string   `yaml:"port" validate:"required"`
	Cors           []*string `yaml:"cors" validate:"required"`
	JWTSecret      *string   `yaml:"jwt_secret" validate:"required"`
	APIKey         *string   `yaml:"api_key" validate:"required"`
	Postgres       *string   `yaml:"postgres" validate:"required"`
	VerifyHost     *string   `yaml:"verify_host" validate:"required"`
	MinIoEndpoint  *string   `yaml:"minio_endpoint" validate:"required"`
	MinIoAccessKey *string   `yaml:"minio_access_key" validate:"required"`
	MinIoSecretKey *string   `yaml:"minio_secret_key" validate:"required"`
	BucketUploads  *string   `yaml:"bucket_uploads" validate:"required"`
	MailHost       *string   `yaml:"mail_host" validate:"required"`
	MailUser       *string   `yaml:"mail_user" validate:"required"`
	MailPass       *string   `yaml:"mail_pass" validate:"required"`
	AdminEmail     *string   `yaml:"admin_email"`
	AdminPassword  *string   `yaml:"admin_password"`
}
