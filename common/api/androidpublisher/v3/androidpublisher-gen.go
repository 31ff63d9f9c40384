// Copyright 2026 The LUCI Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package androidpublisher provides access to the Google Play Android
// Developer API.
//
// Usage example:
//
//	import "go.chromium.org/playpublisher/common/api/androidpublisher/v3"
//	...
//	androidpublisherService, err := androidpublisher.NewService(ctx, androidpublisher.Options{
//		Auth: authenticator,
//	})
//	edit, err := androidpublisherService.Edits.Insert("com.example.app", &androidpublisher.AppEdit{}).Do()
package androidpublisher // import "go.chromium.org/playpublisher/common/api/androidpublisher/v3"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/api/gensupport"
)

// Always reference these packages, just in case the auto-generated code
// below doesn't.
var _ = fmt.Sprintf
var _ = io.Copy
var _ = gensupport.MarshalJSON
var _ = googleapi.Version
var _ = errors.New
var _ = context.Canceled

const apiId = "androidpublisher:v3"
const apiName = "androidpublisher"
const apiVersion = "v3"
const basePath = "https://androidpublisher.googleapis.com/"
const rootURL = "https://androidpublisher.googleapis.com/"

// OAuth2 scopes used by this API.
const (
	// View and manage your Google Play Developer account
	AndroidpublisherScope = "https://www.googleapis.com/auth/androidpublisher"
)

// New creates a Service sending its requests through client. The client is
// expected to authorize the requests by itself.
func New(client *http.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	return NewService(context.Background(), Options{Client: client})
}

type Service struct {
	*hub

	Edits *EditsService

	Inappproducts *InappproductsService

	Internalappsharingartifacts *InternalappsharingartifactsService

	Orders *OrdersService

	Purchases *PurchasesService

	Reviews *ReviewsService

	Systemapks *SystemapksService
}

func newService(h *hub) *Service {
	s := &Service{hub: h}
	s.Edits = NewEditsService(s)
	s.Inappproducts = NewInappproductsService(s)
	s.Internalappsharingartifacts = NewInternalappsharingartifactsService(s)
	s.Orders = NewOrdersService(s)
	s.Purchases = NewPurchasesService(s)
	s.Reviews = NewReviewsService(s)
	s.Systemapks = NewSystemapksService(s)
	return s
}

func NewEditsService(s *Service) *EditsService {
	rs := &EditsService{s: s}
	rs.Apks = NewEditsApksService(s)
	rs.Bundles = NewEditsBundlesService(s)
	rs.Countryavailability = NewEditsCountryavailabilityService(s)
	rs.Deobfuscationfiles = NewEditsDeobfuscationfilesService(s)
	rs.Details = NewEditsDetailsService(s)
	rs.Expansionfiles = NewEditsExpansionfilesService(s)
	rs.Images = NewEditsImagesService(s)
	rs.Listings = NewEditsListingsService(s)
	rs.Testers = NewEditsTestersService(s)
	rs.Tracks = NewEditsTracksService(s)
	return rs
}

type EditsService struct {
	s *Service

	Apks *EditsApksService

	Bundles *EditsBundlesService

	Countryavailability *EditsCountryavailabilityService

	Deobfuscationfiles *EditsDeobfuscationfilesService

	Details *EditsDetailsService

	Expansionfiles *EditsExpansionfilesService

	Images *EditsImagesService

	Listings *EditsListingsService

	Testers *EditsTestersService

	Tracks *EditsTracksService
}

func NewEditsApksService(s *Service) *EditsApksService {
	rs := &EditsApksService{s: s}
	return rs
}

type EditsApksService struct {
	s *Service
}

func NewEditsBundlesService(s *Service) *EditsBundlesService {
	rs := &EditsBundlesService{s: s}
	return rs
}

type EditsBundlesService struct {
	s *Service
}

func NewEditsCountryavailabilityService(s *Service) *EditsCountryavailabilityService {
	rs := &EditsCountryavailabilityService{s: s}
	return rs
}

type EditsCountryavailabilityService struct {
	s *Service
}

func NewEditsDeobfuscationfilesService(s *Service) *EditsDeobfuscationfilesService {
	rs := &EditsDeobfuscationfilesService{s: s}
	return rs
}

type EditsDeobfuscationfilesService struct {
	s *Service
}

func NewEditsDetailsService(s *Service) *EditsDetailsService {
	rs := &EditsDetailsService{s: s}
	return rs
}

type EditsDetailsService struct {
	s *Service
}

func NewEditsExpansionfilesService(s *Service) *EditsExpansionfilesService {
	rs := &EditsExpansionfilesService{s: s}
	return rs
}

type EditsExpansionfilesService struct {
	s *Service
}

func NewEditsImagesService(s *Service) *EditsImagesService {
	rs := &EditsImagesService{s: s}
	return rs
}

type EditsImagesService struct {
	s *Service
}

func NewEditsListingsService(s *Service) *EditsListingsService {
	rs := &EditsListingsService{s: s}
	return rs
}

type EditsListingsService struct {
	s *Service
}

func NewEditsTestersService(s *Service) *EditsTestersService {
	rs := &EditsTestersService{s: s}
	return rs
}

type EditsTestersService struct {
	s *Service
}

func NewEditsTracksService(s *Service) *EditsTracksService {
	rs := &EditsTracksService{s: s}
	return rs
}

type EditsTracksService struct {
	s *Service
}

func NewInappproductsService(s *Service) *InappproductsService {
	rs := &InappproductsService{s: s}
	return rs
}

type InappproductsService struct {
	s *Service
}

func NewInternalappsharingartifactsService(s *Service) *InternalappsharingartifactsService {
	rs := &InternalappsharingartifactsService{s: s}
	return rs
}

type InternalappsharingartifactsService struct {
	s *Service
}

func NewOrdersService(s *Service) *OrdersService {
	rs := &OrdersService{s: s}
	return rs
}

type OrdersService struct {
	s *Service
}

func NewPurchasesService(s *Service) *PurchasesService {
	rs := &PurchasesService{s: s}
	rs.Products = NewPurchasesProductsService(s)
	rs.Subscriptions = NewPurchasesSubscriptionsService(s)
	rs.Voidedpurchases = NewPurchasesVoidedpurchasesService(s)
	return rs
}

type PurchasesService struct {
	s *Service

	Products *PurchasesProductsService

	Subscriptions *PurchasesSubscriptionsService

	Voidedpurchases *PurchasesVoidedpurchasesService
}

func NewPurchasesProductsService(s *Service) *PurchasesProductsService {
	rs := &PurchasesProductsService{s: s}
	return rs
}

type PurchasesProductsService struct {
	s *Service
}

func NewPurchasesSubscriptionsService(s *Service) *PurchasesSubscriptionsService {
	rs := &PurchasesSubscriptionsService{s: s}
	return rs
}

type PurchasesSubscriptionsService struct {
	s *Service
}

func NewPurchasesVoidedpurchasesService(s *Service) *PurchasesVoidedpurchasesService {
	rs := &PurchasesVoidedpurchasesService{s: s}
	return rs
}

type PurchasesVoidedpurchasesService struct {
	s *Service
}

func NewReviewsService(s *Service) *ReviewsService {
	rs := &ReviewsService{s: s}
	return rs
}

type ReviewsService struct {
	s *Service
}

func NewSystemapksService(s *Service) *SystemapksService {
	rs := &SystemapksService{s: s}
	rs.Variants = NewSystemapksVariantsService(s)
	return rs
}

type SystemapksService struct {
	s *Service

	Variants *SystemapksVariantsService
}

func NewSystemapksVariantsService(s *Service) *SystemapksVariantsService {
	rs := &SystemapksVariantsService{s: s}
	return rs
}

type SystemapksVariantsService struct {
	s *Service
}

// Apk: Information about an APK. The resource for ApksService.
type Apk struct {
	// Binary: Information about the binary payload of this APK.
	Binary *ApkBinary `json:"binary,omitempty"`

	// VersionCode: The version code of the APK, as specified in the
	// manifest file.
	VersionCode int64 `json:"versionCode,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Binary") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Apk) MarshalJSON() ([]byte, error) {
	type noMethod Apk
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ApkBinary: Represents the binary payload of an APK.
type ApkBinary struct {
	// Sha1: A sha1 hash of the APK payload, encoded as a hex string and
	// matching the output of the sha1sum command.
	Sha1 string `json:"sha1,omitempty"`

	// Sha256: A sha256 hash of the APK payload, encoded as a hex string
	// and matching the output of the sha256sum command.
	Sha256 string `json:"sha256,omitempty"`

	// ForceSendFields is a list of field names (e.g. "Sha1") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ApkBinary) MarshalJSON() ([]byte, error) {
	type noMethod ApkBinary
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ApksAddExternallyHostedRequest: Request to create a new externally
// hosted APK.
type ApksAddExternallyHostedRequest struct {
	// ExternallyHostedApk: The definition of the externally-hosted APK and
	// where it is located.
	ExternallyHostedApk *ExternallyHostedApk `json:"externallyHostedApk,omitempty"`

	// ForceSendFields is a list of field names (e.g.
	// "ExternallyHostedApk") to unconditionally include in API requests.
	// By default, fields with empty values are omitted from API requests.
	// However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ApksAddExternallyHostedRequest) MarshalJSON() ([]byte, error) {
	type noMethod ApksAddExternallyHostedRequest
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ApksAddExternallyHostedResponse: Response for creating a new
// externally hosted APK.
type ApksAddExternallyHostedResponse struct {
	// ExternallyHostedApk: The definition of the externally-hosted APK and
	// where it is located.
	ExternallyHostedApk *ExternallyHostedApk `json:"externallyHostedApk,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g.
	// "ExternallyHostedApk") to unconditionally include in API requests.
	// By default, fields with empty values are omitted from API requests.
	// However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ApksAddExternallyHostedResponse) MarshalJSON() ([]byte, error) {
	type noMethod ApksAddExternallyHostedResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ApksListResponse: Response listing all APKs.
type ApksListResponse struct {
	// Apks: All APKs.
	Apks []*Apk `json:"apks,omitempty"`

	// Kind: The kind of this response
	// ("androidpublisher#apksListResponse").
	Kind string `json:"kind,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Apks") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ApksListResponse) MarshalJSON() ([]byte, error) {
	type noMethod ApksListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// AppDetails: The app details. The resource for DetailsService.
type AppDetails struct {
	// ContactEmail: The user-visible support email for this app.
	ContactEmail string `json:"contactEmail,omitempty"`

	// ContactPhone: The user-visible support telephone number for this
	// app.
	ContactPhone string `json:"contactPhone,omitempty"`

	// ContactWebsite: The user-visible website for this app.
	ContactWebsite string `json:"contactWebsite,omitempty"`

	// DefaultLanguage: Default language code, in BCP 47 format (eg
	// "en-US").
	DefaultLanguage string `json:"defaultLanguage,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "ContactEmail") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *AppDetails) MarshalJSON() ([]byte, error) {
	type noMethod AppDetails
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// AppEdit: An app edit. The resource for EditsService.
type AppEdit struct {
	// ExpiryTimeSeconds: Output only. The time (as seconds) at which the
	// edit will expire and will be no longer valid for use.
	ExpiryTimeSeconds string `json:"expiryTimeSeconds,omitempty"`

	// Id: Output only. Identifier of the edit. Can be used in subsequent
	// API calls.
	Id string `json:"id,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "ExpiryTimeSeconds")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *AppEdit) MarshalJSON() ([]byte, error) {
	type noMethod AppEdit
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Bundle: Information about an app bundle. The resource for
// BundlesService.
type Bundle struct {
	// Sha1: A sha1 hash of the upload payload, encoded as a hex string and
	// matching the output of the sha1sum command.
	Sha1 string `json:"sha1,omitempty"`

	// Sha256: A sha256 hash of the upload payload, encoded as a hex string
	// and matching the output of the sha256sum command.
	Sha256 string `json:"sha256,omitempty"`

	// VersionCode: The version code of the Android App Bundle, as
	// specified in the Android App Bundle's base module APK manifest file.
	VersionCode int64 `json:"versionCode,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Sha1") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Bundle) MarshalJSON() ([]byte, error) {
	type noMethod Bundle
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// BundlesListResponse: Response listing all app bundles.
type BundlesListResponse struct {
	// Bundles: All app bundles.
	Bundles []*Bundle `json:"bundles,omitempty"`

	// Kind: The kind of this response
	// ("androidpublisher#bundlesListResponse").
	Kind string `json:"kind,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Bundles") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *BundlesListResponse) MarshalJSON() ([]byte, error) {
	type noMethod BundlesListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Comment: An entry of conversation between user and developer.
type Comment struct {
	// DeveloperComment: A comment from a developer.
	DeveloperComment *DeveloperComment `json:"developerComment,omitempty"`

	// UserComment: A comment from a user.
	UserComment *UserComment `json:"userComment,omitempty"`

	// ForceSendFields is a list of field names (e.g. "DeveloperComment")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Comment) MarshalJSON() ([]byte, error) {
	type noMethod Comment
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// CountryTargeting: Country targeting specification.
type CountryTargeting struct {
	// Countries: Countries to target, specified as two letter CLDR codes.
	Countries []string `json:"countries,omitempty"`

	// IncludeRestOfWorld: Include "rest of world" as well as explicitly
	// targeted countries.
	IncludeRestOfWorld bool `json:"includeRestOfWorld,omitempty"`

	// ForceSendFields is a list of field names (e.g. "Countries") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *CountryTargeting) MarshalJSON() ([]byte, error) {
	type noMethod CountryTargeting
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// DeobfuscationFile: Represents a deobfuscation file.
type DeobfuscationFile struct {
	// SymbolType: The type of the deobfuscation file.
	//
	// Possible values:
	//   "deobfuscationFileTypeUnspecified" - Unspecified deobfuscation
	//     file type.
	//   "proguard" - Proguard deobfuscation file type.
	//   "nativeCode" - Native debugging symbols file type.
	SymbolType string `json:"symbolType,omitempty"`

	// ForceSendFields is a list of field names (e.g. "SymbolType") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *DeobfuscationFile) MarshalJSON() ([]byte, error) {
	type noMethod DeobfuscationFile
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// DeobfuscationFilesUploadResponse: Responses for the upload.
type DeobfuscationFilesUploadResponse struct {
	// DeobfuscationFile: The uploaded Deobfuscation File configuration.
	DeobfuscationFile *DeobfuscationFile `json:"deobfuscationFile,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "DeobfuscationFile")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *DeobfuscationFilesUploadResponse) MarshalJSON() ([]byte, error) {
	type noMethod DeobfuscationFilesUploadResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// DeveloperComment: Developer entry from conversation between user and
// developer.
type DeveloperComment struct {
	// LastModified: The last time at which this comment was updated.
	LastModified *Timestamp `json:"lastModified,omitempty"`

	// Text: The content of the comment, i.e. reply body.
	Text string `json:"text,omitempty"`

	// ForceSendFields is a list of field names (e.g. "LastModified") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *DeveloperComment) MarshalJSON() ([]byte, error) {
	type noMethod DeveloperComment
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// DeviceMetadata: Characteristics of the user's device.
type DeviceMetadata struct {
	// CpuMake: Device CPU make, e.g. "Qualcomm"
	CpuMake string `json:"cpuMake,omitempty"`

	// CpuModel: Device CPU model, e.g. "MSM8974"
	CpuModel string `json:"cpuModel,omitempty"`

	// DeviceClass: Device class (e.g. tablet)
	DeviceClass string `json:"deviceClass,omitempty"`

	// GlEsVersion: OpenGL version
	GlEsVersion int64 `json:"glEsVersion,omitempty"`

	// Manufacturer: Device manufacturer (e.g. Motorola)
	Manufacturer string `json:"manufacturer,omitempty"`

	// NativePlatform: Comma separated list of native platforms (e.g.
	// "arm", "arm7")
	NativePlatform string `json:"nativePlatform,omitempty"`

	// ProductName: Device model name (e.g. Droid)
	ProductName string `json:"productName,omitempty"`

	// RamMb: Device RAM in Megabytes, e.g. "2048"
	RamMb int64 `json:"ramMb,omitempty"`

	// ScreenDensityDpi: Screen density in DPI
	ScreenDensityDpi int64 `json:"screenDensityDpi,omitempty"`

	// ScreenHeightPx: Screen height in pixels
	ScreenHeightPx int64 `json:"screenHeightPx,omitempty"`

	// ScreenWidthPx: Screen width in pixels
	ScreenWidthPx int64 `json:"screenWidthPx,omitempty"`

	// ForceSendFields is a list of field names (e.g. "CpuMake") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *DeviceMetadata) MarshalJSON() ([]byte, error) {
	type noMethod DeviceMetadata
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// DeviceSpec: The device spec used to generate a system APK.
type DeviceSpec struct {
	// ScreenDensity: Screen dpi.
	ScreenDensity int64 `json:"screenDensity,omitempty"`

	// SupportedAbis: Supported ABI architectures in the order of
	// preference. The values should be the string as reported by the
	// platform, e.g. "armeabi-v7a", "x86_64".
	SupportedAbis []string `json:"supportedAbis,omitempty"`

	// SupportedLocales: All installed locales represented as BCP-47
	// strings, e.g. "en-US".
	SupportedLocales []string `json:"supportedLocales,omitempty"`

	// ForceSendFields is a list of field names (e.g. "ScreenDensity") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *DeviceSpec) MarshalJSON() ([]byte, error) {
	type noMethod DeviceSpec
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ExpansionFile: An expansion file. The resource for
// ExpansionFilesService.
type ExpansionFile struct {
	// FileSize: If set, this field indicates that this APK has an
	// expansion file uploaded to it: this APK does not reference another
	// APK's expansion file. The field's value is the size of the uploaded
	// expansion file in bytes.
	FileSize int64 `json:"fileSize,omitempty,string"`

	// ReferencesVersion: If set, this APK's expansion file references
	// another APK's expansion file. The file_size field will not be set.
	ReferencesVersion int64 `json:"referencesVersion,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "FileSize") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ExpansionFile) MarshalJSON() ([]byte, error) {
	type noMethod ExpansionFile
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ExpansionFilesUploadResponse: Response for uploading an expansion
// file.
type ExpansionFilesUploadResponse struct {
	// ExpansionFile: The uploaded expansion file configuration.
	ExpansionFile *ExpansionFile `json:"expansionFile,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "ExpansionFile") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ExpansionFilesUploadResponse) MarshalJSON() ([]byte, error) {
	type noMethod ExpansionFilesUploadResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ExternallyHostedApk: Defines an APK available for this application
// that is hosted externally and not uploaded to Google Play. This
// function is only available to organizations using Managed Play whose
// application is configured to restrict distribution to the
// organizations.
type ExternallyHostedApk struct {
	// ApplicationLabel: The application label.
	ApplicationLabel string `json:"applicationLabel,omitempty"`

	// CertificateBase64s: A certificate (or array of certificates if a
	// certificate-chain is used) used to sign this APK, represented as a
	// base64 encoded byte array.
	CertificateBase64s []string `json:"certificateBase64s,omitempty"`

	// ExternallyHostedUrl: The URL at which the APK is hosted. This must
	// be an https URL.
	ExternallyHostedUrl string `json:"externallyHostedUrl,omitempty"`

	// FileSha1Base64: The sha1 checksum of this APK, represented as a
	// base64 encoded byte array.
	FileSha1Base64 string `json:"fileSha1Base64,omitempty"`

	// FileSha256Base64: The sha256 checksum of this APK, represented as a
	// base64 encoded byte array.
	FileSha256Base64 string `json:"fileSha256Base64,omitempty"`

	// FileSize: The file size in bytes of this APK.
	FileSize int64 `json:"fileSize,omitempty,string"`

	// IconBase64: The icon image from the APK, as a base64 encoded byte
	// array.
	IconBase64 string `json:"iconBase64,omitempty"`

	// MaximumSdk: The maximum SDK supported by this APK (optional).
	MaximumSdk int64 `json:"maximumSdk,omitempty"`

	// MinimumSdk: The minimum SDK targeted by this APK.
	MinimumSdk int64 `json:"minimumSdk,omitempty"`

	// NativeCodes: The native code environments supported by this APK
	// (optional).
	NativeCodes []string `json:"nativeCodes,omitempty"`

	// PackageName: The package name.
	PackageName string `json:"packageName,omitempty"`

	// UsesFeatures: The features required by this APK (optional).
	UsesFeatures []string `json:"usesFeatures,omitempty"`

	// UsesPermissions: The permissions requested by this APK.
	UsesPermissions []*UsesPermission `json:"usesPermissions,omitempty"`

	// VersionCode: The version code of this APK.
	VersionCode int64 `json:"versionCode,omitempty"`

	// VersionName: The version name of this APK.
	VersionName string `json:"versionName,omitempty"`

	// ForceSendFields is a list of field names (e.g. "ApplicationLabel")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ExternallyHostedApk) MarshalJSON() ([]byte, error) {
	type noMethod ExternallyHostedApk
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Image: An uploaded image. The resource for ImagesService.
type Image struct {
	// Id: A unique id representing this image.
	Id string `json:"id,omitempty"`

	// Sha1: A sha1 hash of the image.
	Sha1 string `json:"sha1,omitempty"`

	// Sha256: A sha256 hash of the image.
	Sha256 string `json:"sha256,omitempty"`

	// Url: A URL that will serve a preview of the image.
	Url string `json:"url,omitempty"`

	// ForceSendFields is a list of field names (e.g. "Id") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Image) MarshalJSON() ([]byte, error) {
	type noMethod Image
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ImagesDeleteAllResponse: Response for deleting all images.
type ImagesDeleteAllResponse struct {
	// Deleted: The deleted images.
	Deleted []*Image `json:"deleted,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Deleted") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ImagesDeleteAllResponse) MarshalJSON() ([]byte, error) {
	type noMethod ImagesDeleteAllResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ImagesListResponse: Response listing all images.
type ImagesListResponse struct {
	// Images: All listed Images.
	Images []*Image `json:"images,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Images") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ImagesListResponse) MarshalJSON() ([]byte, error) {
	type noMethod ImagesListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ImagesUploadResponse: Response for uploading an image.
type ImagesUploadResponse struct {
	// Image: The uploaded image.
	Image *Image `json:"image,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Image") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ImagesUploadResponse) MarshalJSON() ([]byte, error) {
	type noMethod ImagesUploadResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// InAppProduct: An in-app product. The resource for
// InappproductsService.
type InAppProduct struct {
	// DefaultLanguage: Default language of the localized data, as defined
	// by BCP-47. e.g. "en-US".
	DefaultLanguage string `json:"defaultLanguage,omitempty"`

	// DefaultPrice: Default price. Cannot be zero, as in-app products are
	// never free. Always in the developer's Checkout merchant currency.
	DefaultPrice *Price `json:"defaultPrice,omitempty"`

	// GracePeriod: Grace period of the subscription, specified in ISO 8601
	// format. Allows developers to give their subscribers a grace period
	// when the payment for the new recurrence period is declined.
	// Acceptable values are P0D (zero days), P3D (three days), P7D (seven
	// days), P14D (14 days), and P30D (30 days).
	GracePeriod string `json:"gracePeriod,omitempty"`

	// Listings: List of localized title and description data. Map key is
	// the language of the localized data, as defined by BCP-47, e.g.
	// "en-US".
	Listings map[string]InAppProductListing `json:"listings,omitempty"`

	// PackageName: Package name of the parent app.
	PackageName string `json:"packageName,omitempty"`

	// Prices: Prices per buyer region. None of these can be zero, as
	// in-app products are never free. Map key is region code, as defined
	// by ISO 3166-2.
	Prices map[string]Price `json:"prices,omitempty"`

	// PurchaseType: The type of the product, e.g. a recurring
	// subscription.
	//
	// Possible values:
	//   "purchaseTypeUnspecified" - Unspecified purchase type.
	//   "managedUser" - The default product type - one time purchase.
	//   "subscription" - In-app product with a recurring period.
	PurchaseType string `json:"purchaseType,omitempty"`

	// Sku: Stock-keeping-unit (SKU) of the product, unique within an app.
	Sku string `json:"sku,omitempty"`

	// Status: The status of the product, e.g. whether it's active.
	//
	// Possible values:
	//   "statusUnspecified" - Unspecified status.
	//   "active" - The product is published and active in the store.
	//   "inactive" - The product is not published and therefore inactive
	//     in the store.
	Status string `json:"status,omitempty"`

	// SubscriptionPeriod: Subscription period, specified in ISO 8601
	// format. Acceptable values are P1W (one week), P1M (one month), P3M
	// (three months), P6M (six months), and P1Y (one year).
	SubscriptionPeriod string `json:"subscriptionPeriod,omitempty"`

	// TrialPeriod: Trial period, specified in ISO 8601 format. Acceptable
	// values are anything between P7D (seven days) and P999D (999 days).
	TrialPeriod string `json:"trialPeriod,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "DefaultLanguage") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *InAppProduct) MarshalJSON() ([]byte, error) {
	type noMethod InAppProduct
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// InAppProductListing: Store listing of a single in-app product.
type InAppProductListing struct {
	// Benefits: Localized entitlement benefits for a subscription.
	Benefits []string `json:"benefits,omitempty"`

	// Description: Description for the store listing.
	Description string `json:"description,omitempty"`

	// Title: Title for the store listing.
	Title string `json:"title,omitempty"`

	// ForceSendFields is a list of field names (e.g. "Benefits") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *InAppProductListing) MarshalJSON() ([]byte, error) {
	type noMethod InAppProductListing
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// InappproductsListResponse: Response listing all in-app products.
type InappproductsListResponse struct {
	// Inappproduct: All in-app products.
	Inappproduct []*InAppProduct `json:"inappproduct,omitempty"`

	// Kind: The kind of this response
	// ("androidpublisher#inappproductsListResponse").
	Kind string `json:"kind,omitempty"`

	// PageInfo: Information about the current page.
	PageInfo *PageInfo `json:"pageInfo,omitempty"`

	// TokenPagination: Pagination token, to handle a number of products
	// that is over one page.
	TokenPagination *TokenPagination `json:"tokenPagination,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Inappproduct") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *InappproductsListResponse) MarshalJSON() ([]byte, error) {
	type noMethod InappproductsListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// InternalAppSharingArtifact: An artifact resource which gets created
// when uploading an APK or Android App Bundle through internal app
// sharing.
type InternalAppSharingArtifact struct {
	// CertificateFingerprint: The sha256 fingerprint of the certificate
	// used to sign the generated artifact.
	CertificateFingerprint string `json:"certificateFingerprint,omitempty"`

	// DownloadUrl: The download URL generated for the uploaded artifact.
	// Users that are authorized to download can follow the link to the
	// Play Store app to install it.
	DownloadUrl string `json:"downloadUrl,omitempty"`

	// Sha256: The sha256 hash of the artifact represented as a lowercase
	// hexadecimal number, matching the output of the sha256sum command.
	Sha256 string `json:"sha256,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g.
	// "CertificateFingerprint") to unconditionally include in API
	// requests. By default, fields with empty values are omitted from API
	// requests. However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *InternalAppSharingArtifact) MarshalJSON() ([]byte, error) {
	type noMethod InternalAppSharingArtifact
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// IntroductoryPriceInfo: Contains the introductory price information
// for a subscription.
type IntroductoryPriceInfo struct {
	// IntroductoryPriceAmountMicros: Introductory price of the
	// subscription, not including tax. The currency is the same as
	// price_currency_code. Price is expressed in micro-units, where
	// 1,000,000 micro-units represents one unit of the currency.
	IntroductoryPriceAmountMicros int64 `json:"introductoryPriceAmountMicros,omitempty,string"`

	// IntroductoryPriceCurrencyCode: ISO 4217 currency code for the
	// introductory subscription price.
	IntroductoryPriceCurrencyCode string `json:"introductoryPriceCurrencyCode,omitempty"`

	// IntroductoryPriceCycles: The number of billing period to offer
	// introductory pricing.
	IntroductoryPriceCycles int64 `json:"introductoryPriceCycles,omitempty"`

	// IntroductoryPricePeriod: Introductory price period, specified in ISO
	// 8601 format.
	IntroductoryPricePeriod string `json:"introductoryPricePeriod,omitempty"`

	// ForceSendFields is a list of field names (e.g.
	// "IntroductoryPriceAmountMicros") to unconditionally include in API
	// requests. By default, fields with empty values are omitted from API
	// requests. However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *IntroductoryPriceInfo) MarshalJSON() ([]byte, error) {
	type noMethod IntroductoryPriceInfo
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Listing: A localized store listing. The resource for ListingsService.
type Listing struct {
	// FullDescription: Full description of the app.
	FullDescription string `json:"fullDescription,omitempty"`

	// Language: Language localization code (a BCP-47 language tag; for
	// example, "de-AT" for Austrian German).
	Language string `json:"language,omitempty"`

	// ShortDescription: Short description of the app.
	ShortDescription string `json:"shortDescription,omitempty"`

	// Title: Localized title of the app.
	Title string `json:"title,omitempty"`

	// Video: URL of a promotional YouTube video for the app.
	Video string `json:"video,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "FullDescription") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Listing) MarshalJSON() ([]byte, error) {
	type noMethod Listing
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ListingsListResponse: Response listing all localized listings.
type ListingsListResponse struct {
	// Kind: The kind of this response
	// ("androidpublisher#listingsListResponse").
	Kind string `json:"kind,omitempty"`

	// Listings: All localized listings.
	Listings []*Listing `json:"listings,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Kind") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ListingsListResponse) MarshalJSON() ([]byte, error) {
	type noMethod ListingsListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// LocalizedText: Release notes specification, i.e. language and text.
type LocalizedText struct {
	// Language: Language localization code (a BCP-47 language tag; for
	// example, "de-AT" for Austrian German).
	Language string `json:"language,omitempty"`

	// Text: The text in the given language.
	Text string `json:"text,omitempty"`

	// ForceSendFields is a list of field names (e.g. "Language") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *LocalizedText) MarshalJSON() ([]byte, error) {
	type noMethod LocalizedText
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// PageInfo: Information about the current page. List operations that
// supports paging return only one "page" of results. This protocol
// buffer message describes the page that has been returned.
type PageInfo struct {
	// ResultPerPage: Maximum number of results returned in one page.
	ResultPerPage int64 `json:"resultPerPage,omitempty"`

	// StartIndex: Index of the first result returned in the current page.
	StartIndex int64 `json:"startIndex,omitempty"`

	// TotalResults: Total number of results available on the backend. The
	// total number of results is not guaranteed to be accurate.
	TotalResults int64 `json:"totalResults,omitempty"`

	// ForceSendFields is a list of field names (e.g. "ResultPerPage") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *PageInfo) MarshalJSON() ([]byte, error) {
	type noMethod PageInfo
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Price: Definition of a price, i.e. currency and units.
type Price struct {
	// Currency: 3 letter Currency code, as defined by ISO 4217.
	Currency string `json:"currency,omitempty"`

	// PriceMicros: Price in 1/million of the currency base unit,
	// represented as a string.
	PriceMicros string `json:"priceMicros,omitempty"`

	// ForceSendFields is a list of field names (e.g. "Currency") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Price) MarshalJSON() ([]byte, error) {
	type noMethod Price
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ProductPurchase: A ProductPurchase resource indicates the status of a
// user's inapp product purchase.
type ProductPurchase struct {
	// AcknowledgementState: The acknowledgement state of the inapp
	// product.
	AcknowledgementState AcknowledgementState `json:"acknowledgementState,omitempty"`

	// ConsumptionState: The consumption state of the inapp product.
	ConsumptionState ConsumptionState `json:"consumptionState,omitempty"`

	// DeveloperPayload: A developer-specified string that contains
	// supplemental information about an order.
	DeveloperPayload string `json:"developerPayload,omitempty"`

	// Kind: This kind represents an inappPurchase object in the
	// androidpublisher service.
	Kind string `json:"kind,omitempty"`

	// ObfuscatedExternalAccountId: An obfuscated version of the id that is
	// uniquely associated with the user's account in your app. Only
	// present if specified using
	// https://developer.android.com/reference/com/android/billingclient/api/BillingFlowParams.Builder#setobfuscatedaccountid
	// when the purchase was made.
	ObfuscatedExternalAccountId string `json:"obfuscatedExternalAccountId,omitempty"`

	// ObfuscatedExternalProfileId: An obfuscated version of the id that is
	// uniquely associated with the user's profile in your app. Only
	// present if specified using
	// https://developer.android.com/reference/com/android/billingclient/api/BillingFlowParams.Builder#setobfuscatedprofileid
	// when the purchase was made.
	ObfuscatedExternalProfileId string `json:"obfuscatedExternalProfileId,omitempty"`

	// OrderId: The order id associated with the purchase of the inapp
	// product.
	OrderId string `json:"orderId,omitempty"`

	// ProductId: The inapp product SKU.
	ProductId string `json:"productId,omitempty"`

	// PurchaseState: The purchase state of the order.
	PurchaseState PurchaseState `json:"purchaseState,omitempty"`

	// PurchaseTimeMillis: The time the product was purchased, in
	// milliseconds since the epoch (Jan 1, 1970).
	PurchaseTimeMillis int64 `json:"purchaseTimeMillis,omitempty,string"`

	// PurchaseToken: The purchase token generated to identify this
	// purchase.
	PurchaseToken string `json:"purchaseToken,omitempty"`

	// PurchaseType: The type of purchase of the inapp product. This field
	// is only set if this purchase was not made using the standard in-app
	// billing flow.
	PurchaseType *PurchaseType `json:"purchaseType,omitempty"`

	// Quantity: The quantity associated with the purchase of the inapp
	// product.
	Quantity int64 `json:"quantity,omitempty"`

	// RegionCode: ISO 3166-1 alpha-2 billing region code of the user at
	// the time the product was granted.
	RegionCode string `json:"regionCode,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g.
	// "AcknowledgementState") to unconditionally include in API requests.
	// By default, fields with empty values are omitted from API requests.
	// However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ProductPurchase) MarshalJSON() ([]byte, error) {
	type noMethod ProductPurchase
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ProductPurchasesAcknowledgeRequest: Request for the
// product.purchases.acknowledge API.
type ProductPurchasesAcknowledgeRequest struct {
	// DeveloperPayload: Payload to attach to the purchase.
	DeveloperPayload string `json:"developerPayload,omitempty"`

	// ForceSendFields is a list of field names (e.g. "DeveloperPayload")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ProductPurchasesAcknowledgeRequest) MarshalJSON() ([]byte, error) {
	type noMethod ProductPurchasesAcknowledgeRequest
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Review: An Android app review.
type Review struct {
	// AuthorName: The name of the user who wrote the review.
	AuthorName string `json:"authorName,omitempty"`

	// Comments: A repeated field containing comments for the review.
	Comments []*Comment `json:"comments,omitempty"`

	// ReviewId: Unique identifier for this review.
	ReviewId string `json:"reviewId,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "AuthorName") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Review) MarshalJSON() ([]byte, error) {
	type noMethod Review
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ReviewReplyResult: The result of replying/updating a reply to review.
type ReviewReplyResult struct {
	// LastEdited: The time at which the reply took effect.
	LastEdited *Timestamp `json:"lastEdited,omitempty"`

	// ReplyText: The reply text that was applied.
	ReplyText string `json:"replyText,omitempty"`

	// ForceSendFields is a list of field names (e.g. "LastEdited") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ReviewReplyResult) MarshalJSON() ([]byte, error) {
	type noMethod ReviewReplyResult
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ReviewsListResponse: Response listing reviews.
type ReviewsListResponse struct {
	// PageInfo: Information about the current page.
	PageInfo *PageInfo `json:"pageInfo,omitempty"`

	// Reviews: List of reviews.
	Reviews []*Review `json:"reviews,omitempty"`

	// TokenPagination: Pagination token, to handle a number of products
	// that is over one page.
	TokenPagination *TokenPagination `json:"tokenPagination,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "PageInfo") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ReviewsListResponse) MarshalJSON() ([]byte, error) {
	type noMethod ReviewsListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ReviewsReplyRequest: Request to reply to review or update existing
// reply.
type ReviewsReplyRequest struct {
	// ReplyText: The text to set as the reply. Replies of more than
	// approximately 350 characters will be rejected. HTML tags will be
	// stripped.
	ReplyText string `json:"replyText,omitempty"`

	// ForceSendFields is a list of field names (e.g. "ReplyText") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ReviewsReplyRequest) MarshalJSON() ([]byte, error) {
	type noMethod ReviewsReplyRequest
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// ReviewsReplyResponse: Response on status of replying to a review.
type ReviewsReplyResponse struct {
	// Result: The result of replying/updating a reply to review.
	Result *ReviewReplyResult `json:"result,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Result") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *ReviewsReplyResponse) MarshalJSON() ([]byte, error) {
	type noMethod ReviewsReplyResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionCancelSurveyResult: Information provided by the user when
// they complete the subscription cancellation flow (cancellation reason
// survey).
type SubscriptionCancelSurveyResult struct {
	// CancelSurveyReason: The cancellation reason the user chose in the
	// survey.
	CancelSurveyReason CancelSurveyReason `json:"cancelSurveyReason,omitempty"`

	// UserInputCancelReason: The customized input cancel reason from the
	// user. Only present when cancelReason is 0.
	UserInputCancelReason string `json:"userInputCancelReason,omitempty"`

	// ForceSendFields is a list of field names (e.g. "CancelSurveyReason")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionCancelSurveyResult) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionCancelSurveyResult
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionDeferralInfo: A SubscriptionDeferralInfo contains the
// data needed to defer a subscription purchase to a future expiry time.
type SubscriptionDeferralInfo struct {
	// DesiredExpiryTimeMillis: The desired next expiry time to assign to
	// the subscription, in milliseconds since the Epoch. The given time
	// must be later/greater than the current expiry time for the
	// subscription.
	DesiredExpiryTimeMillis int64 `json:"desiredExpiryTimeMillis,omitempty,string"`

	// ExpectedExpiryTimeMillis: The expected expiry time for the
	// subscription. If the current expiry time for the subscription is not
	// the value specified here, the deferral will not occur.
	ExpectedExpiryTimeMillis int64 `json:"expectedExpiryTimeMillis,omitempty,string"`

	// ForceSendFields is a list of field names (e.g.
	// "DesiredExpiryTimeMillis") to unconditionally include in API
	// requests. By default, fields with empty values are omitted from API
	// requests. However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionDeferralInfo) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionDeferralInfo
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionPriceChange: Contains the price change information for a
// subscription that can be used to control the user journey for the
// price change in the app. This can be in the form of seeking
// confirmation from the user or tailoring the experience for a
// successful conversion.
type SubscriptionPriceChange struct {
	// NewPrice: The new price the subscription will renew with if the
	// price change is accepted by the user.
	NewPrice *Price `json:"newPrice,omitempty"`

	// State: The current state of the price change.
	State PriceChangeState `json:"state,omitempty"`

	// ForceSendFields is a list of field names (e.g. "NewPrice") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionPriceChange) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionPriceChange
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionPurchase: A SubscriptionPurchase resource indicates the
// status of a user's subscription purchase.
type SubscriptionPurchase struct {
	// AcknowledgementState: The acknowledgement state of the subscription
	// product.
	AcknowledgementState AcknowledgementState `json:"acknowledgementState,omitempty"`

	// AutoRenewing: Whether the subscription will automatically be renewed
	// when it reaches its current expiry time.
	AutoRenewing bool `json:"autoRenewing,omitempty"`

	// AutoResumeTimeMillis: Time at which the subscription will be
	// automatically resumed, in milliseconds since the Epoch. Only present
	// if the user has requested to pause the subscription.
	AutoResumeTimeMillis int64 `json:"autoResumeTimeMillis,omitempty,string"`

	// CancelReason: The reason why a subscription was canceled or is not
	// auto-renewing.
	CancelReason CancelReason `json:"cancelReason,omitempty"`

	// CancelSurveyResult: Information provided by the user when they
	// complete the subscription cancellation flow (cancellation reason
	// survey).
	CancelSurveyResult *SubscriptionCancelSurveyResult `json:"cancelSurveyResult,omitempty"`

	// CountryCode: ISO 3166-1 alpha-2 billing country/region code of the
	// user at the time the subscription was granted.
	CountryCode string `json:"countryCode,omitempty"`

	// DeveloperPayload: A developer-specified string that contains
	// supplemental information about an order.
	DeveloperPayload string `json:"developerPayload,omitempty"`

	// EmailAddress: The email address of the user when the subscription
	// was purchased. Only present for purchases made with 'Subscribe with
	// Google'.
	EmailAddress string `json:"emailAddress,omitempty"`

	// ExpiryTimeMillis: Time at which the subscription will expire, in
	// milliseconds since the Epoch.
	ExpiryTimeMillis int64 `json:"expiryTimeMillis,omitempty,string"`

	// ExternalAccountId: User account identifier in the third-party
	// service. Only present if account linking happened as part of the
	// subscription purchase flow.
	ExternalAccountId string `json:"externalAccountId,omitempty"`

	// FamilyName: The family name of the user when the subscription was
	// purchased. Only present for purchases made with 'Subscribe with
	// Google'.
	FamilyName string `json:"familyName,omitempty"`

	// GivenName: The given name of the user when the subscription was
	// purchased. Only present for purchases made with 'Subscribe with
	// Google'.
	GivenName string `json:"givenName,omitempty"`

	// IntroductoryPriceInfo: Introductory price information of the
	// subscription. This is only present when the subscription was
	// purchased with an introductory price.
	IntroductoryPriceInfo *IntroductoryPriceInfo `json:"introductoryPriceInfo,omitempty"`

	// Kind: This kind represents a subscriptionPurchase object in the
	// androidpublisher service.
	Kind string `json:"kind,omitempty"`

	// LinkedPurchaseToken: The purchase token of the originating purchase
	// if this subscription is one of the following: 0. Re-signup of a
	// canceled but non-lapsed subscription 1. Upgrade/downgrade from a
	// previous subscription.
	LinkedPurchaseToken string `json:"linkedPurchaseToken,omitempty"`

	// ObfuscatedExternalAccountId: An obfuscated version of the id that is
	// uniquely associated with the user's account in your app.
	ObfuscatedExternalAccountId string `json:"obfuscatedExternalAccountId,omitempty"`

	// ObfuscatedExternalProfileId: An obfuscated version of the id that is
	// uniquely associated with the user's profile in your app.
	ObfuscatedExternalProfileId string `json:"obfuscatedExternalProfileId,omitempty"`

	// OrderId: The order id of the latest recurring order associated with
	// the purchase of the subscription.
	OrderId string `json:"orderId,omitempty"`

	// PaymentState: The payment state of the subscription. Not present for
	// canceled, expired subscriptions.
	PaymentState *PaymentState `json:"paymentState,omitempty"`

	// PriceAmountMicros: Price of the subscription, not including tax.
	// Price is expressed in micro-units, where 1,000,000 micro-units
	// represents one unit of the currency.
	PriceAmountMicros int64 `json:"priceAmountMicros,omitempty,string"`

	// PriceChange: The latest price change information available. This is
	// present only when there is an upcoming price change for the
	// subscription yet to be applied.
	PriceChange *SubscriptionPriceChange `json:"priceChange,omitempty"`

	// PriceCurrencyCode: ISO 4217 currency code for the subscription
	// price.
	PriceCurrencyCode string `json:"priceCurrencyCode,omitempty"`

	// ProfileId: The Google profile id of the user when the subscription
	// was purchased. Only present for purchases made with 'Subscribe with
	// Google'.
	ProfileId string `json:"profileId,omitempty"`

	// ProfileName: The profile name of the user when the subscription was
	// purchased. Only present for purchases made with 'Subscribe with
	// Google'.
	ProfileName string `json:"profileName,omitempty"`

	// PromotionCode: The promotion code applied on this purchase. This
	// field is only set if a vanity code promotion is applied when the
	// subscription was purchased.
	PromotionCode string `json:"promotionCode,omitempty"`

	// PromotionType: The type of promotion applied on this purchase. This
	// field is only set if a promotion is applied when the subscription
	// was purchased.
	PromotionType PromotionType `json:"promotionType,omitempty"`

	// PurchaseType: The type of purchase of the subscription. This field
	// is only set if this purchase was not made using the standard in-app
	// billing flow.
	PurchaseType *PurchaseType `json:"purchaseType,omitempty"`

	// StartTimeMillis: Time at which the subscription was granted, in
	// milliseconds since the Epoch.
	StartTimeMillis int64 `json:"startTimeMillis,omitempty,string"`

	// UserCancellationTimeMillis: The time at which the subscription was
	// canceled by the user, in milliseconds since the epoch. Only present
	// if cancelReason is 0.
	UserCancellationTimeMillis int64 `json:"userCancellationTimeMillis,omitempty,string"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g.
	// "AcknowledgementState") to unconditionally include in API requests.
	// By default, fields with empty values are omitted from API requests.
	// However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionPurchase) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionPurchase
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionPurchasesAcknowledgeRequest: Request for the
// purchases.subscriptions.acknowledge API.
type SubscriptionPurchasesAcknowledgeRequest struct {
	// DeveloperPayload: Payload to attach to the purchase.
	DeveloperPayload string `json:"developerPayload,omitempty"`

	// ForceSendFields is a list of field names (e.g. "DeveloperPayload")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionPurchasesAcknowledgeRequest) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionPurchasesAcknowledgeRequest
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionPurchasesDeferRequest: Request for the
// purchases.subscriptions.defer API.
type SubscriptionPurchasesDeferRequest struct {
	// DeferralInfo: The information about the new desired expiry time for
	// the subscription.
	DeferralInfo *SubscriptionDeferralInfo `json:"deferralInfo,omitempty"`

	// ForceSendFields is a list of field names (e.g. "DeferralInfo") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionPurchasesDeferRequest) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionPurchasesDeferRequest
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SubscriptionPurchasesDeferResponse: Response for the
// purchases.subscriptions.defer API.
type SubscriptionPurchasesDeferResponse struct {
	// NewExpiryTimeMillis: The new expiry time for the subscription in
	// milliseconds since the Epoch.
	NewExpiryTimeMillis int64 `json:"newExpiryTimeMillis,omitempty,string"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g.
	// "NewExpiryTimeMillis") to unconditionally include in API requests.
	// By default, fields with empty values are omitted from API requests.
	// However, any non-pointer, non-interface field appearing in
	// ForceSendFields will be sent to the server regardless of whether the
	// field is empty or not. This may be used to include empty fields in
	// Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SubscriptionPurchasesDeferResponse) MarshalJSON() ([]byte, error) {
	type noMethod SubscriptionPurchasesDeferResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// SystemApksListResponse: Response to list previously created system
// APK variants.
type SystemApksListResponse struct {
	// Variants: All system APK variants created.
	Variants []*Variant `json:"variants,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Variants") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *SystemApksListResponse) MarshalJSON() ([]byte, error) {
	type noMethod SystemApksListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Testers: The testers of an app. The resource for TestersService.
type Testers struct {
	// GoogleGroups: All testing Google Groups, as email addresses.
	GoogleGroups []string `json:"googleGroups,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "GoogleGroups") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Testers) MarshalJSON() ([]byte, error) {
	type noMethod Testers
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Timestamp: A Timestamp represents a point in time independent of any
// time zone or local calendar, encoded as a count of seconds and
// fractions of seconds at nanosecond resolution. It is always in UTC.
type Timestamp struct {
	// Nanos: Non-negative fractions of a second at nanosecond resolution.
	// Must be from 0 to 999,999,999 inclusive.
	Nanos int64 `json:"nanos,omitempty"`

	// Seconds: Represents seconds of UTC time since Unix epoch.
	Seconds int64 `json:"seconds,omitempty,string"`

	// ForceSendFields is a list of field names (e.g. "Nanos") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Timestamp) MarshalJSON() ([]byte, error) {
	type noMethod Timestamp
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// TokenPagination: Pagination information returned by a List operation
// when token pagination is enabled. List operations that supports
// paging return only one "page" of results. This protocol buffer
// message describes the page that has been returned. When using token
// pagination, clients should use the next/previous token to get another
// page of the result. The presence or absence of next/previous token
// indicates whether a next/previous page is available and provides a
// mean of accessing this page. ListRequest.page_token should be set to
// either next_page_token or previous_page_token to access another page.
type TokenPagination struct {
	// NextPageToken: Tokens to pass to the standard list field
	// 'page_token'. Whenever available, tokens are preferred over
	// manipulating start_index.
	NextPageToken string `json:"nextPageToken,omitempty"`

	PreviousPageToken string `json:"previousPageToken,omitempty"`

	// ForceSendFields is a list of field names (e.g. "NextPageToken") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *TokenPagination) MarshalJSON() ([]byte, error) {
	type noMethod TokenPagination
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Track: A track configuration. The resource for TracksService.
type Track struct {
	// Releases: In a read request, represents all active releases in the
	// track. In an update request, represents desired changes.
	Releases []*TrackRelease `json:"releases,omitempty"`

	// Track: Identifier of the track.
	Track string `json:"track,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Releases") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Track) MarshalJSON() ([]byte, error) {
	type noMethod Track
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// TrackCountryAvailability: Resource for per-track country availability
// information.
type TrackCountryAvailability struct {
	// Countries: A list of one or more countries where artifacts in this
	// track are available. This list includes all countries that are
	// targeted by the track, even if only specific carriers are targeted
	// in that country.
	Countries []*TrackTargetedCountry `json:"countries,omitempty"`

	// RestOfWorld: Whether artifacts in this track are available to "rest
	// of the world" countries.
	RestOfWorld bool `json:"restOfWorld,omitempty"`

	// SyncWithProduction: Whether this track's availability is synced with
	// the default production track.
	SyncWithProduction bool `json:"syncWithProduction,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Countries") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *TrackCountryAvailability) MarshalJSON() ([]byte, error) {
	type noMethod TrackCountryAvailability
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// TrackRelease: A release within a track.
type TrackRelease struct {
	// CountryTargeting: Restricts a release to a specific set of
	// countries.
	CountryTargeting *CountryTargeting `json:"countryTargeting,omitempty"`

	// InAppUpdatePriority: In-app update priority of the release. All
	// newly added APKs in the release will be considered at this priority.
	// Can take values in the range [0, 5], with 5 the highest priority.
	// Defaults to 0.
	InAppUpdatePriority int64 `json:"inAppUpdatePriority,omitempty"`

	// Name: The release name. Not required to be unique. If not set, the
	// name is generated from the APK's version_name. If the release
	// contains multiple APKs, the name is generated from the date.
	Name string `json:"name,omitempty"`

	// ReleaseNotes: A description of what is new in this release.
	ReleaseNotes []*LocalizedText `json:"releaseNotes,omitempty"`

	// Status: The status of the release.
	//
	// Possible values:
	//   "statusUnspecified" - Unspecified status.
	//   "draft" - The release's APKs are not being served to users.
	//   "inProgress" - The release's APKs are being served to a fraction
	//     of users, determined by 'user_fraction'.
	//   "halted" - The release's APKs will no longer be served to users.
	//   "completed" - The release will have no further changes. Its APKs
	//     are being served to all users, unless they are eligible to APKs of
	//     a more recent release.
	Status string `json:"status,omitempty"`

	// UserFraction: Fraction of users who are eligible for a staged
	// release. 0 < fraction < 1. Can only be set when status is
	// "inProgress" or "halted".
	UserFraction float64 `json:"userFraction,omitempty"`

	// VersionCodes: Version codes of all APKs in the release. Must include
	// version codes to retain from previous releases.
	VersionCodes googleapi.Int64s `json:"versionCodes,omitempty"`

	// ForceSendFields is a list of field names (e.g. "CountryTargeting")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *TrackRelease) MarshalJSON() ([]byte, error) {
	type noMethod TrackRelease
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// TrackTargetedCountry: Representation of a single country where the
// contents of a track are available.
type TrackTargetedCountry struct {
	// CountryCode: The country to target, as a two-letter CLDR code.
	CountryCode string `json:"countryCode,omitempty"`

	// ForceSendFields is a list of field names (e.g. "CountryCode") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *TrackTargetedCountry) MarshalJSON() ([]byte, error) {
	type noMethod TrackTargetedCountry
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// TracksListResponse: Response listing all tracks.
type TracksListResponse struct {
	// Kind: The kind of this response
	// ("androidpublisher#tracksListResponse").
	Kind string `json:"kind,omitempty"`

	// Tracks: All tracks.
	Tracks []*Track `json:"tracks,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "Kind") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *TracksListResponse) MarshalJSON() ([]byte, error) {
	type noMethod TracksListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// UserComment: User entry from conversation between user and developer.
type UserComment struct {
	// AndroidOsVersion: Integer Android SDK version of the user's device
	// at the time the review was written, e.g. 23 is Marshmallow. May be
	// absent.
	AndroidOsVersion int64 `json:"androidOsVersion,omitempty"`

	// AppVersionCode: Integer version code of the app as installed at the
	// time the review was written. May be absent.
	AppVersionCode int64 `json:"appVersionCode,omitempty"`

	// AppVersionName: String version name of the app as installed at the
	// time the review was written. May be absent.
	AppVersionName string `json:"appVersionName,omitempty"`

	// Device: Codename for the reviewer's device, e.g. klte, flounder. May
	// be absent.
	Device string `json:"device,omitempty"`

	// DeviceMetadata: Information about the characteristics of the user's
	// device.
	DeviceMetadata *DeviceMetadata `json:"deviceMetadata,omitempty"`

	// LastModified: The last time at which this comment was updated.
	LastModified *Timestamp `json:"lastModified,omitempty"`

	// OriginalText: Untranslated text of the review, where the review was
	// translated. If the review was not translated this is left blank.
	OriginalText string `json:"originalText,omitempty"`

	// ReviewerLanguage: Language code for the reviewer. This is taken from
	// the device settings so is not guaranteed to match the language the
	// review is written in. May be absent.
	ReviewerLanguage string `json:"reviewerLanguage,omitempty"`

	// StarRating: The star rating associated with the review, from 1 to 5.
	StarRating int64 `json:"starRating,omitempty"`

	// Text: The content of the comment, i.e. review body. In some cases
	// users have been able to write a review with separate title and body;
	// in those cases the title and body are concatenated and separated by
	// a tab character.
	Text string `json:"text,omitempty"`

	// ThumbsDownCount: Number of users who have given this review a thumbs
	// down.
	ThumbsDownCount int64 `json:"thumbsDownCount,omitempty"`

	// ThumbsUpCount: Number of users who have given this review a thumbs
	// up.
	ThumbsUpCount int64 `json:"thumbsUpCount,omitempty"`

	// ForceSendFields is a list of field names (e.g. "AndroidOsVersion")
	// to unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *UserComment) MarshalJSON() ([]byte, error) {
	type noMethod UserComment
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// UsesPermission: A permission used by this APK.
type UsesPermission struct {
	// MaxSdkVersion: Optionally, the maximum SDK version for which the
	// permission is required.
	MaxSdkVersion int64 `json:"maxSdkVersion,omitempty"`

	// Name: The name of the permission requested.
	Name string `json:"name,omitempty"`

	// ForceSendFields is a list of field names (e.g. "MaxSdkVersion") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *UsesPermission) MarshalJSON() ([]byte, error) {
	type noMethod UsesPermission
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// Variant: APK that is suitable for inclusion in a system image. The
// resource of SystemApksService.
type Variant struct {
	// DeviceSpec: The device spec used to generate the APK.
	DeviceSpec *DeviceSpec `json:"deviceSpec,omitempty"`

	// VariantId: Output only. The ID of a previously created system APK
	// variant.
	VariantId int64 `json:"variantId,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "DeviceSpec") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *Variant) MarshalJSON() ([]byte, error) {
	type noMethod Variant
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// VoidedPurchase: A VoidedPurchase resource indicates a purchase that
// was either canceled/refunded/charged-back.
type VoidedPurchase struct {
	// Kind: This kind represents a voided purchase object in the
	// androidpublisher service.
	Kind string `json:"kind,omitempty"`

	// OrderId: The order id which uniquely identifies a one-time purchase,
	// subscription purchase, or subscription renewal.
	OrderId string `json:"orderId,omitempty"`

	// PurchaseTimeMillis: The time at which the purchase was made, in
	// milliseconds since the epoch (Jan 1, 1970).
	PurchaseTimeMillis int64 `json:"purchaseTimeMillis,omitempty,string"`

	// PurchaseToken: The token which uniquely identifies a one-time
	// purchase or subscription. To uniquely identify subscription renewals
	// use order_id (available starting from version 3 of the API).
	PurchaseToken string `json:"purchaseToken,omitempty"`

	// VoidedReason: The reason why the purchase was voided.
	VoidedReason VoidedReason `json:"voidedReason,omitempty"`

	// VoidedSource: The initiator of voided purchase.
	VoidedSource VoidedSource `json:"voidedSource,omitempty"`

	// VoidedTimeMillis: The time at which the purchase was
	// canceled/refunded/charged-back, in milliseconds since the epoch (Jan
	// 1, 1970).
	VoidedTimeMillis int64 `json:"voidedTimeMillis,omitempty,string"`

	// ForceSendFields is a list of field names (e.g. "Kind") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *VoidedPurchase) MarshalJSON() ([]byte, error) {
	type noMethod VoidedPurchase
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// VoidedPurchasesListResponse: Response for the voidedpurchases.list
// API.
type VoidedPurchasesListResponse struct {
	// PageInfo: General pagination information.
	PageInfo *PageInfo `json:"pageInfo,omitempty"`

	// TokenPagination: Pagination information for token pagination.
	TokenPagination *TokenPagination `json:"tokenPagination,omitempty"`

	VoidedPurchases []*VoidedPurchase `json:"voidedPurchases,omitempty"`

	// ServerResponse contains the HTTP response code and headers from the
	// server.
	googleapi.ServerResponse `json:"-"`

	// ForceSendFields is a list of field names (e.g. "PageInfo") to
	// unconditionally include in API requests. By default, fields with
	// empty values are omitted from API requests. However, any
	// non-pointer, non-interface field appearing in ForceSendFields will
	// be sent to the server regardless of whether the field is empty or
	// not. This may be used to include empty fields in Patch requests.
	ForceSendFields []string `json:"-"`
}

func (s *VoidedPurchasesListResponse) MarshalJSON() ([]byte, error) {
	type noMethod VoidedPurchasesListResponse
	raw := noMethod(*s)
	return gensupport.MarshalJSON(raw, s.ForceSendFields)
}

// method id "androidpublisher.edits.commit":

type EditsCommitCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Commit: Commits an app edit.
func (r *EditsService) Commit(packageName string, editId string) *EditsCommitCall {
	c := &EditsCommitCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// ChangesNotSentForReview sets the optional parameter
// "changesNotSentForReview": Indicates that the changes in this edit
// will not be reviewed until they are explicitly sent for review from
// the Google Play Console UI. These changes will be added to any other
// changes that are not yet sent for review.
func (c *EditsCommitCall) ChangesNotSentForReview(changesNotSentForReview bool) *EditsCommitCall {
	c.urlParams_.Set("changesNotSentForReview", fmt.Sprint(changesNotSentForReview))
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsCommitCall) Param(name, value string) *EditsCommitCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsCommitCall) AddScope(scope string) *EditsCommitCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsCommitCall) Delegate(d gensupport.Delegate) *EditsCommitCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsCommitCall) Fields(s ...googleapi.Field) *EditsCommitCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsCommitCall) Context(ctx context.Context) *EditsCommitCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsCommitCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsCommitCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.commit", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}:commit",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Reserved: []string{"changesNotSentForReview"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.commit" call.
// Exactly one of *AppEdit or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *AppEdit.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsCommitCall) Do(opts ...googleapi.CallOption) (*AppEdit, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppEdit{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Commits an app edit.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.commit",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "changesNotSentForReview": {
	//       "description": "Indicates that the changes in this edit will not be reviewed until they are explicitly sent for review from the Google Play Console UI. These changes will be added to any other changes that are not yet sent for review.",
	//       "location": "query",
	//       "type": "boolean"
	//     },
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}:commit",
	//   "response": {
	//     "$ref": "AppEdit"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.delete":

type EditsDeleteCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Delete: Deletes an app edit.
func (r *EditsService) Delete(packageName string, editId string) *EditsDeleteCall {
	c := &EditsDeleteCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsDeleteCall) Param(name, value string) *EditsDeleteCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsDeleteCall) AddScope(scope string) *EditsDeleteCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsDeleteCall) Delegate(d gensupport.Delegate) *EditsDeleteCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsDeleteCall) Fields(s ...googleapi.Field) *EditsDeleteCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsDeleteCall) Context(ctx context.Context) *EditsDeleteCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsDeleteCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsDeleteCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.delete", HTTPMethod: "DELETE"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.delete" call.
func (c *EditsDeleteCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Deletes an app edit.",
	//   "httpMethod": "DELETE",
	//   "id": "androidpublisher.edits.delete",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.get":

type EditsGetCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets an app edit.
func (r *EditsService) Get(packageName string, editId string) *EditsGetCall {
	c := &EditsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsGetCall) Param(name, value string) *EditsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsGetCall) AddScope(scope string) *EditsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsGetCall) Delegate(d gensupport.Delegate) *EditsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsGetCall) Fields(s ...googleapi.Field) *EditsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsGetCall) Context(ctx context.Context) *EditsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.get" call.
// Exactly one of *AppEdit or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *AppEdit.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsGetCall) Do(opts ...googleapi.CallOption) (*AppEdit, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppEdit{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets an app edit.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}",
	//   "response": {
	//     "$ref": "AppEdit"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.insert":

type EditsInsertCall struct {
	s           *Service
	packageName string
	appedit     *AppEdit
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Insert: Creates a new edit for an app.
func (r *EditsService) Insert(packageName string, appedit *AppEdit) *EditsInsertCall {
	c := &EditsInsertCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.appedit = appedit
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsInsertCall) Param(name, value string) *EditsInsertCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsInsertCall) AddScope(scope string) *EditsInsertCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsInsertCall) Delegate(d gensupport.Delegate) *EditsInsertCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsInsertCall) Fields(s ...googleapi.Field) *EditsInsertCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsInsertCall) Context(ctx context.Context) *EditsInsertCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsInsertCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsInsertCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.insert", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.appedit,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.insert" call.
// Exactly one of *AppEdit or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *AppEdit.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsInsertCall) Do(opts ...googleapi.CallOption) (*AppEdit, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppEdit{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Creates a new edit for an app.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.insert",
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits",
	//   "request": {
	//     "$ref": "AppEdit"
	//   },
	//   "response": {
	//     "$ref": "AppEdit"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.validate":

type EditsValidateCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Validate: Validates an app edit.
func (r *EditsService) Validate(packageName string, editId string) *EditsValidateCall {
	c := &EditsValidateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsValidateCall) Param(name, value string) *EditsValidateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsValidateCall) AddScope(scope string) *EditsValidateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsValidateCall) Delegate(d gensupport.Delegate) *EditsValidateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsValidateCall) Fields(s ...googleapi.Field) *EditsValidateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsValidateCall) Context(ctx context.Context) *EditsValidateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsValidateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsValidateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.validate", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}:validate",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.validate" call.
// Exactly one of *AppEdit or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *AppEdit.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsValidateCall) Do(opts ...googleapi.CallOption) (*AppEdit, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppEdit{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Validates an app edit.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.validate",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}:validate",
	//   "response": {
	//     "$ref": "AppEdit"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.apks.addexternallyhosted":

type EditsApksAddexternallyhostedCall struct {
	s                              *Service
	packageName                    string
	editId                         string
	apksaddexternallyhostedrequest *ApksAddExternallyHostedRequest
	urlParams_                     gensupport.URLParams
	extra_                         map[string]string
	scopes_                        []string
	delegate_                      gensupport.Delegate
	ctx_                           context.Context
	header_                        http.Header
}

// Addexternallyhosted: Creates a new APK without uploading the APK
// itself to Google Play, instead hosting the APK at a specified URL.
// This function is only available to organizations using Managed Play
// whose application is configured to restrict distribution to the
// organizations.
func (r *EditsApksService) Addexternallyhosted(packageName string, editId string, apksaddexternallyhostedrequest *ApksAddExternallyHostedRequest) *EditsApksAddexternallyhostedCall {
	c := &EditsApksAddexternallyhostedCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.apksaddexternallyhostedrequest = apksaddexternallyhostedrequest
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsApksAddexternallyhostedCall) Param(name, value string) *EditsApksAddexternallyhostedCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsApksAddexternallyhostedCall) AddScope(scope string) *EditsApksAddexternallyhostedCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsApksAddexternallyhostedCall) Delegate(d gensupport.Delegate) *EditsApksAddexternallyhostedCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsApksAddexternallyhostedCall) Fields(s ...googleapi.Field) *EditsApksAddexternallyhostedCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsApksAddexternallyhostedCall) Context(ctx context.Context) *EditsApksAddexternallyhostedCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsApksAddexternallyhostedCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsApksAddexternallyhostedCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.apks.addexternallyhosted", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/externallyHosted",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.apksaddexternallyhostedrequest,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.apks.addexternallyhosted" call.
// Exactly one of *ApksAddExternallyHostedResponse or error will be
// non-nil. Any non-2xx status code is an error. Response headers are in
// either *ApksAddExternallyHostedResponse.ServerResponse.Header or (if
// a response was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsApksAddexternallyhostedCall) Do(opts ...googleapi.CallOption) (*ApksAddExternallyHostedResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ApksAddExternallyHostedResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Creates a new APK without uploading the APK itself to Google Play, instead hosting the APK at a specified URL. This function is only available to organizations using Managed Play whose application is configured to restrict distribution to the organizations.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.apks.addexternallyhosted",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/externallyHosted",
	//   "request": {
	//     "$ref": "ApksAddExternallyHostedRequest"
	//   },
	//   "response": {
	//     "$ref": "ApksAddExternallyHostedResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.apks.list":

type EditsApksListCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all current APKs of the app and edit.
func (r *EditsApksService) List(packageName string, editId string) *EditsApksListCall {
	c := &EditsApksListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsApksListCall) Param(name, value string) *EditsApksListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsApksListCall) AddScope(scope string) *EditsApksListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsApksListCall) Delegate(d gensupport.Delegate) *EditsApksListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsApksListCall) Fields(s ...googleapi.Field) *EditsApksListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsApksListCall) Context(ctx context.Context) *EditsApksListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsApksListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsApksListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.apks.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.apks.list" call.
// Exactly one of *ApksListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ApksListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsApksListCall) Do(opts ...googleapi.CallOption) (*ApksListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ApksListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all current APKs of the app and edit.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.apks.list",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
	//   "response": {
	//     "$ref": "ApksListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.apks.upload":

type EditsApksUploadCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	media_      io.Reader
	mediaOpts_  []googleapi.MediaOption
	ctx_        context.Context
	header_     http.Header
}

// Upload: Uploads an APK and adds to the current edit.
func (r *EditsApksService) Upload(packageName string, editId string) *EditsApksUploadCall {
	c := &EditsApksUploadCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Media specifies the media to upload. At most 10GB (10737418240 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: application/octet-stream, application/vnd.android.package-archive.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *EditsApksUploadCall) Media(r io.Reader, options ...googleapi.MediaOption) *EditsApksUploadCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsApksUploadCall) Param(name, value string) *EditsApksUploadCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsApksUploadCall) AddScope(scope string) *EditsApksUploadCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsApksUploadCall) Delegate(d gensupport.Delegate) *EditsApksUploadCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsApksUploadCall) Fields(s ...googleapi.Field) *EditsApksUploadCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsApksUploadCall) Context(ctx context.Context) *EditsApksUploadCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsApksUploadCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsApksUploadCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.edits.apks.upload", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
		UploadPath: "upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   10737418240,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.edits.apks.upload" call.
// Exactly one of *Apk or error will be non-nil. Any non-2xx status code
// is an error. Response headers are in either
// *Apk.ServerResponse.Header or (if a response was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsApksUploadCall) Do(opts ...googleapi.CallOption) (*Apk, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Apk{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads an APK and adds to the current edit.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.apks.upload",
	//   "mediaUpload": {
	//     "accept": [
	//       "application/octet-stream",
	//       "application/vnd.android.package-archive"
	//     ],
	//     "maxSize": "10GB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
	//   "response": {
	//     "$ref": "Apk"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.edits.bundles.list":

type EditsBundlesListCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all current Android App Bundles of the app and edit.
func (r *EditsBundlesService) List(packageName string, editId string) *EditsBundlesListCall {
	c := &EditsBundlesListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsBundlesListCall) Param(name, value string) *EditsBundlesListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsBundlesListCall) AddScope(scope string) *EditsBundlesListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsBundlesListCall) Delegate(d gensupport.Delegate) *EditsBundlesListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsBundlesListCall) Fields(s ...googleapi.Field) *EditsBundlesListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsBundlesListCall) Context(ctx context.Context) *EditsBundlesListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsBundlesListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsBundlesListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.bundles.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/bundles",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.bundles.list" call.
// Exactly one of *BundlesListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *BundlesListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsBundlesListCall) Do(opts ...googleapi.CallOption) (*BundlesListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &BundlesListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all current Android App Bundles of the app and edit.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.bundles.list",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/bundles",
	//   "response": {
	//     "$ref": "BundlesListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.bundles.upload":

type EditsBundlesUploadCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	media_      io.Reader
	mediaOpts_  []googleapi.MediaOption
	ctx_        context.Context
	header_     http.Header
}

// Upload: Uploads a new Android App Bundle to this edit. If you are
// using the Google API client libraries, please increase the timeout of
// the http request before calling this endpoint (a timeout of 2 minutes
// is recommended).
func (r *EditsBundlesService) Upload(packageName string, editId string) *EditsBundlesUploadCall {
	c := &EditsBundlesUploadCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// AckBundleInstallationWarning sets the optional parameter
// "ackBundleInstallationWarning": Must be set to true if the bundle
// installation may trigger a warning on user devices (for example, if
// installation size may be over a threshold, typically 100 MB).
func (c *EditsBundlesUploadCall) AckBundleInstallationWarning(ackBundleInstallationWarning bool) *EditsBundlesUploadCall {
	c.urlParams_.Set("ackBundleInstallationWarning", fmt.Sprint(ackBundleInstallationWarning))
	return c
}

// Media specifies the media to upload. At most 10GB (10737418240 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: application/octet-stream.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *EditsBundlesUploadCall) Media(r io.Reader, options ...googleapi.MediaOption) *EditsBundlesUploadCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsBundlesUploadCall) Param(name, value string) *EditsBundlesUploadCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsBundlesUploadCall) AddScope(scope string) *EditsBundlesUploadCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsBundlesUploadCall) Delegate(d gensupport.Delegate) *EditsBundlesUploadCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsBundlesUploadCall) Fields(s ...googleapi.Field) *EditsBundlesUploadCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsBundlesUploadCall) Context(ctx context.Context) *EditsBundlesUploadCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsBundlesUploadCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsBundlesUploadCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.edits.bundles.upload", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/{packageName}/edits/{editId}/bundles",
		UploadPath: "upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/bundles",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Reserved:     []string{"ackBundleInstallationWarning"},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   10737418240,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.edits.bundles.upload" call.
// Exactly one of *Bundle or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Bundle.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsBundlesUploadCall) Do(opts ...googleapi.CallOption) (*Bundle, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Bundle{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads a new Android App Bundle to this edit. If you are using the Google API client libraries, please increase the timeout of the http request before calling this endpoint (a timeout of 2 minutes is recommended).",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.bundles.upload",
	//   "mediaUpload": {
	//     "accept": [
	//       "application/octet-stream"
	//     ],
	//     "maxSize": "10GB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/bundles"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "ackBundleInstallationWarning": {
	//       "description": "Must be set to true if the bundle installation may trigger a warning on user devices (for example, if installation size may be over a threshold, typically 100 MB).",
	//       "location": "query",
	//       "type": "boolean"
	//     },
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/bundles",
	//   "response": {
	//     "$ref": "Bundle"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.edits.countryavailability.get":

type EditsCountryavailabilityGetCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets country availability.
func (r *EditsCountryavailabilityService) Get(packageName string, editId string, track string) *EditsCountryavailabilityGetCall {
	c := &EditsCountryavailabilityGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsCountryavailabilityGetCall) Param(name, value string) *EditsCountryavailabilityGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsCountryavailabilityGetCall) AddScope(scope string) *EditsCountryavailabilityGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsCountryavailabilityGetCall) Delegate(d gensupport.Delegate) *EditsCountryavailabilityGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsCountryavailabilityGetCall) Fields(s ...googleapi.Field) *EditsCountryavailabilityGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsCountryavailabilityGetCall) Context(ctx context.Context) *EditsCountryavailabilityGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsCountryavailabilityGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsCountryavailabilityGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.countryavailability.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/countryAvailability/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.countryavailability.get" call.
// Exactly one of *TrackCountryAvailability or error will be non-nil.
// Any non-2xx status code is an error. Response headers are in either
// *TrackCountryAvailability.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsCountryavailabilityGetCall) Do(opts ...googleapi.CallOption) (*TrackCountryAvailability, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &TrackCountryAvailability{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets country availability.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.countryavailability.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read from.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/countryAvailability/{track}",
	//   "response": {
	//     "$ref": "TrackCountryAvailability"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.deobfuscationfiles.upload":

type EditsDeobfuscationfilesUploadCall struct {
	s                     *Service
	packageName           string
	editId                string
	apkVersionCode        int64
	deobfuscationFileType string
	urlParams_            gensupport.URLParams
	extra_                map[string]string
	scopes_               []string
	delegate_             gensupport.Delegate
	media_                io.Reader
	mediaOpts_            []googleapi.MediaOption
	ctx_                  context.Context
	header_               http.Header
}

// Upload: Uploads a new deobfuscation file and attaches to the
// specified APK.
func (r *EditsDeobfuscationfilesService) Upload(packageName string, editId string, apkVersionCode int64, deobfuscationFileType string) *EditsDeobfuscationfilesUploadCall {
	c := &EditsDeobfuscationfilesUploadCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.apkVersionCode = apkVersionCode
	c.deobfuscationFileType = deobfuscationFileType
	return c
}

// Media specifies the media to upload. At most 300MB (314572800 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: application/octet-stream.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *EditsDeobfuscationfilesUploadCall) Media(r io.Reader, options ...googleapi.MediaOption) *EditsDeobfuscationfilesUploadCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsDeobfuscationfilesUploadCall) Param(name, value string) *EditsDeobfuscationfilesUploadCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsDeobfuscationfilesUploadCall) AddScope(scope string) *EditsDeobfuscationfilesUploadCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsDeobfuscationfilesUploadCall) Delegate(d gensupport.Delegate) *EditsDeobfuscationfilesUploadCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsDeobfuscationfilesUploadCall) Fields(s ...googleapi.Field) *EditsDeobfuscationfilesUploadCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsDeobfuscationfilesUploadCall) Context(ctx context.Context) *EditsDeobfuscationfilesUploadCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsDeobfuscationfilesUploadCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsDeobfuscationfilesUploadCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.edits.deobfuscationfiles.upload", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/deobfuscationFiles/{deobfuscationFileType}",
		UploadPath: "upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/deobfuscationFiles/{deobfuscationFileType}",
		PathParams: map[string]string{
			"packageName":           c.packageName,
			"editId":                c.editId,
			"apkVersionCode":        fmt.Sprint(c.apkVersionCode),
			"deobfuscationFileType": c.deobfuscationFileType,
		},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   314572800,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.edits.deobfuscationfiles.upload" call.
// Exactly one of *DeobfuscationFilesUploadResponse or error will be
// non-nil. Any non-2xx status code is an error. Response headers are in
// either *DeobfuscationFilesUploadResponse.ServerResponse.Header or (if
// a response was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsDeobfuscationfilesUploadCall) Do(opts ...googleapi.CallOption) (*DeobfuscationFilesUploadResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &DeobfuscationFilesUploadResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads a new deobfuscation file and attaches to the specified APK.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.deobfuscationfiles.upload",
	//   "mediaUpload": {
	//     "accept": [
	//       "application/octet-stream"
	//     ],
	//     "maxSize": "300MB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/deobfuscationFiles/{deobfuscationFileType}"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "apkVersionCode",
	//     "deobfuscationFileType"
	//   ],
	//   "parameters": {
	//     "apkVersionCode": {
	//       "description": "The version code of the APK whose Deobfuscation File is being uploaded.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "deobfuscationFileType": {
	//       "description": "The type of the deobfuscation file.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "editId": {
	//       "description": "Unique identifier for this edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Unique identifier for the Android app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/deobfuscationFiles/{deobfuscationFileType}",
	//   "response": {
	//     "$ref": "DeobfuscationFilesUploadResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.edits.details.get":

type EditsDetailsGetCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets details of an app.
func (r *EditsDetailsService) Get(packageName string, editId string) *EditsDetailsGetCall {
	c := &EditsDetailsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsDetailsGetCall) Param(name, value string) *EditsDetailsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsDetailsGetCall) AddScope(scope string) *EditsDetailsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsDetailsGetCall) Delegate(d gensupport.Delegate) *EditsDetailsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsDetailsGetCall) Fields(s ...googleapi.Field) *EditsDetailsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsDetailsGetCall) Context(ctx context.Context) *EditsDetailsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsDetailsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsDetailsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.details.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/details",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.details.get" call.
// Exactly one of *AppDetails or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *AppDetails.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsDetailsGetCall) Do(opts ...googleapi.CallOption) (*AppDetails, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppDetails{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets details of an app.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.details.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/details",
	//   "response": {
	//     "$ref": "AppDetails"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.details.patch":

type EditsDetailsPatchCall struct {
	s           *Service
	packageName string
	editId      string
	appdetails  *AppDetails
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Patch: Patches details of an app.
func (r *EditsDetailsService) Patch(packageName string, editId string, appdetails *AppDetails) *EditsDetailsPatchCall {
	c := &EditsDetailsPatchCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.appdetails = appdetails
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsDetailsPatchCall) Param(name, value string) *EditsDetailsPatchCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsDetailsPatchCall) AddScope(scope string) *EditsDetailsPatchCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsDetailsPatchCall) Delegate(d gensupport.Delegate) *EditsDetailsPatchCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsDetailsPatchCall) Fields(s ...googleapi.Field) *EditsDetailsPatchCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsDetailsPatchCall) Context(ctx context.Context) *EditsDetailsPatchCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsDetailsPatchCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsDetailsPatchCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.details.patch", HTTPMethod: "PATCH"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/details",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.appdetails,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.details.patch" call.
// Exactly one of *AppDetails or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *AppDetails.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsDetailsPatchCall) Do(opts ...googleapi.CallOption) (*AppDetails, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppDetails{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Patches details of an app.",
	//   "httpMethod": "PATCH",
	//   "id": "androidpublisher.edits.details.patch",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/details",
	//   "request": {
	//     "$ref": "AppDetails"
	//   },
	//   "response": {
	//     "$ref": "AppDetails"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.details.update":

type EditsDetailsUpdateCall struct {
	s           *Service
	packageName string
	editId      string
	appdetails  *AppDetails
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Update: Updates details of an app.
func (r *EditsDetailsService) Update(packageName string, editId string, appdetails *AppDetails) *EditsDetailsUpdateCall {
	c := &EditsDetailsUpdateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.appdetails = appdetails
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsDetailsUpdateCall) Param(name, value string) *EditsDetailsUpdateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsDetailsUpdateCall) AddScope(scope string) *EditsDetailsUpdateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsDetailsUpdateCall) Delegate(d gensupport.Delegate) *EditsDetailsUpdateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsDetailsUpdateCall) Fields(s ...googleapi.Field) *EditsDetailsUpdateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsDetailsUpdateCall) Context(ctx context.Context) *EditsDetailsUpdateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsDetailsUpdateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsDetailsUpdateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.details.update", HTTPMethod: "PUT"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/details",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.appdetails,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.details.update" call.
// Exactly one of *AppDetails or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *AppDetails.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsDetailsUpdateCall) Do(opts ...googleapi.CallOption) (*AppDetails, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &AppDetails{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Updates details of an app.",
	//   "httpMethod": "PUT",
	//   "id": "androidpublisher.edits.details.update",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/details",
	//   "request": {
	//     "$ref": "AppDetails"
	//   },
	//   "response": {
	//     "$ref": "AppDetails"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.expansionfiles.get":

type EditsExpansionfilesGetCall struct {
	s                 *Service
	packageName       string
	editId            string
	apkVersionCode    int64
	expansionFileType string
	urlParams_        gensupport.URLParams
	extra_            map[string]string
	scopes_           []string
	delegate_         gensupport.Delegate
	ctx_              context.Context
	header_           http.Header
}

// Get: Fetches the expansion file configuration for the specified APK.
func (r *EditsExpansionfilesService) Get(packageName string, editId string, apkVersionCode int64, expansionFileType string) *EditsExpansionfilesGetCall {
	c := &EditsExpansionfilesGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.apkVersionCode = apkVersionCode
	c.expansionFileType = expansionFileType
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsExpansionfilesGetCall) Param(name, value string) *EditsExpansionfilesGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsExpansionfilesGetCall) AddScope(scope string) *EditsExpansionfilesGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsExpansionfilesGetCall) Delegate(d gensupport.Delegate) *EditsExpansionfilesGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsExpansionfilesGetCall) Fields(s ...googleapi.Field) *EditsExpansionfilesGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsExpansionfilesGetCall) Context(ctx context.Context) *EditsExpansionfilesGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsExpansionfilesGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsExpansionfilesGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.expansionfiles.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
		PathParams: map[string]string{
			"packageName":       c.packageName,
			"editId":            c.editId,
			"apkVersionCode":    fmt.Sprint(c.apkVersionCode),
			"expansionFileType": c.expansionFileType,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.expansionfiles.get" call.
// Exactly one of *ExpansionFile or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *ExpansionFile.ServerResponse.Header or (if a response was returned
// at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsExpansionfilesGetCall) Do(opts ...googleapi.CallOption) (*ExpansionFile, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ExpansionFile{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Fetches the expansion file configuration for the specified APK.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.expansionfiles.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "apkVersionCode",
	//     "expansionFileType"
	//   ],
	//   "parameters": {
	//     "apkVersionCode": {
	//       "description": "The version code of the APK whose expansion file configuration is being read or modified.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "expansionFileType": {
	//       "description": "The file type of the file configuration which is being read or modified.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
	//   "response": {
	//     "$ref": "ExpansionFile"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.expansionfiles.patch":

type EditsExpansionfilesPatchCall struct {
	s                 *Service
	packageName       string
	editId            string
	apkVersionCode    int64
	expansionFileType string
	expansionfile     *ExpansionFile
	urlParams_        gensupport.URLParams
	extra_            map[string]string
	scopes_           []string
	delegate_         gensupport.Delegate
	ctx_              context.Context
	header_           http.Header
}

// Patch: Patches the APK's expansion file configuration to reference
// another APK's expansion file. To add a new expansion file use the
// Upload method.
func (r *EditsExpansionfilesService) Patch(packageName string, editId string, apkVersionCode int64, expansionFileType string, expansionfile *ExpansionFile) *EditsExpansionfilesPatchCall {
	c := &EditsExpansionfilesPatchCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.apkVersionCode = apkVersionCode
	c.expansionFileType = expansionFileType
	c.expansionfile = expansionfile
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsExpansionfilesPatchCall) Param(name, value string) *EditsExpansionfilesPatchCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsExpansionfilesPatchCall) AddScope(scope string) *EditsExpansionfilesPatchCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsExpansionfilesPatchCall) Delegate(d gensupport.Delegate) *EditsExpansionfilesPatchCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsExpansionfilesPatchCall) Fields(s ...googleapi.Field) *EditsExpansionfilesPatchCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsExpansionfilesPatchCall) Context(ctx context.Context) *EditsExpansionfilesPatchCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsExpansionfilesPatchCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsExpansionfilesPatchCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.expansionfiles.patch", HTTPMethod: "PATCH"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
		PathParams: map[string]string{
			"packageName":       c.packageName,
			"editId":            c.editId,
			"apkVersionCode":    fmt.Sprint(c.apkVersionCode),
			"expansionFileType": c.expansionFileType,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.expansionfile,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.expansionfiles.patch" call.
// Exactly one of *ExpansionFile or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *ExpansionFile.ServerResponse.Header or (if a response was returned
// at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsExpansionfilesPatchCall) Do(opts ...googleapi.CallOption) (*ExpansionFile, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ExpansionFile{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Patches the APK's expansion file configuration to reference another APK's expansion file. To add a new expansion file use the Upload method.",
	//   "httpMethod": "PATCH",
	//   "id": "androidpublisher.edits.expansionfiles.patch",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "apkVersionCode",
	//     "expansionFileType"
	//   ],
	//   "parameters": {
	//     "apkVersionCode": {
	//       "description": "The version code of the APK whose expansion file configuration is being read or modified.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "expansionFileType": {
	//       "description": "The file type of the file configuration which is being read or modified.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
	//   "request": {
	//     "$ref": "ExpansionFile"
	//   },
	//   "response": {
	//     "$ref": "ExpansionFile"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.expansionfiles.update":

type EditsExpansionfilesUpdateCall struct {
	s                 *Service
	packageName       string
	editId            string
	apkVersionCode    int64
	expansionFileType string
	expansionfile     *ExpansionFile
	urlParams_        gensupport.URLParams
	extra_            map[string]string
	scopes_           []string
	delegate_         gensupport.Delegate
	ctx_              context.Context
	header_           http.Header
}

// Update: Updates the APK's expansion file configuration to reference
// another APK's expansion file. To add a new expansion file use the
// Upload method.
func (r *EditsExpansionfilesService) Update(packageName string, editId string, apkVersionCode int64, expansionFileType string, expansionfile *ExpansionFile) *EditsExpansionfilesUpdateCall {
	c := &EditsExpansionfilesUpdateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.apkVersionCode = apkVersionCode
	c.expansionFileType = expansionFileType
	c.expansionfile = expansionfile
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsExpansionfilesUpdateCall) Param(name, value string) *EditsExpansionfilesUpdateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsExpansionfilesUpdateCall) AddScope(scope string) *EditsExpansionfilesUpdateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsExpansionfilesUpdateCall) Delegate(d gensupport.Delegate) *EditsExpansionfilesUpdateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsExpansionfilesUpdateCall) Fields(s ...googleapi.Field) *EditsExpansionfilesUpdateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsExpansionfilesUpdateCall) Context(ctx context.Context) *EditsExpansionfilesUpdateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsExpansionfilesUpdateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsExpansionfilesUpdateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.expansionfiles.update", HTTPMethod: "PUT"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
		PathParams: map[string]string{
			"packageName":       c.packageName,
			"editId":            c.editId,
			"apkVersionCode":    fmt.Sprint(c.apkVersionCode),
			"expansionFileType": c.expansionFileType,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.expansionfile,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.expansionfiles.update" call.
// Exactly one of *ExpansionFile or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *ExpansionFile.ServerResponse.Header or (if a response was returned
// at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsExpansionfilesUpdateCall) Do(opts ...googleapi.CallOption) (*ExpansionFile, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ExpansionFile{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Updates the APK's expansion file configuration to reference another APK's expansion file. To add a new expansion file use the Upload method.",
	//   "httpMethod": "PUT",
	//   "id": "androidpublisher.edits.expansionfiles.update",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "apkVersionCode",
	//     "expansionFileType"
	//   ],
	//   "parameters": {
	//     "apkVersionCode": {
	//       "description": "The version code of the APK whose expansion file configuration is being read or modified.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "expansionFileType": {
	//       "description": "The file type of the file configuration which is being read or modified.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
	//   "request": {
	//     "$ref": "ExpansionFile"
	//   },
	//   "response": {
	//     "$ref": "ExpansionFile"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.expansionfiles.upload":

type EditsExpansionfilesUploadCall struct {
	s                 *Service
	packageName       string
	editId            string
	apkVersionCode    int64
	expansionFileType string
	urlParams_        gensupport.URLParams
	extra_            map[string]string
	scopes_           []string
	delegate_         gensupport.Delegate
	media_            io.Reader
	mediaOpts_        []googleapi.MediaOption
	ctx_              context.Context
	header_           http.Header
}

// Upload: Uploads a new expansion file and attaches to the specified
// APK.
func (r *EditsExpansionfilesService) Upload(packageName string, editId string, apkVersionCode int64, expansionFileType string) *EditsExpansionfilesUploadCall {
	c := &EditsExpansionfilesUploadCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.apkVersionCode = apkVersionCode
	c.expansionFileType = expansionFileType
	return c
}

// Media specifies the media to upload. At most 2048MB (2147483648 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: application/octet-stream.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *EditsExpansionfilesUploadCall) Media(r io.Reader, options ...googleapi.MediaOption) *EditsExpansionfilesUploadCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsExpansionfilesUploadCall) Param(name, value string) *EditsExpansionfilesUploadCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsExpansionfilesUploadCall) AddScope(scope string) *EditsExpansionfilesUploadCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsExpansionfilesUploadCall) Delegate(d gensupport.Delegate) *EditsExpansionfilesUploadCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsExpansionfilesUploadCall) Fields(s ...googleapi.Field) *EditsExpansionfilesUploadCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsExpansionfilesUploadCall) Context(ctx context.Context) *EditsExpansionfilesUploadCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsExpansionfilesUploadCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsExpansionfilesUploadCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.edits.expansionfiles.upload", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
		UploadPath: "upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
		PathParams: map[string]string{
			"packageName":       c.packageName,
			"editId":            c.editId,
			"apkVersionCode":    fmt.Sprint(c.apkVersionCode),
			"expansionFileType": c.expansionFileType,
		},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   2147483648,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.edits.expansionfiles.upload" call.
// Exactly one of *ExpansionFilesUploadResponse or error will be
// non-nil. Any non-2xx status code is an error. Response headers are in
// either *ExpansionFilesUploadResponse.ServerResponse.Header or (if a
// response was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsExpansionfilesUploadCall) Do(opts ...googleapi.CallOption) (*ExpansionFilesUploadResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ExpansionFilesUploadResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads a new expansion file and attaches to the specified APK.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.expansionfiles.upload",
	//   "mediaUpload": {
	//     "accept": [
	//       "application/octet-stream"
	//     ],
	//     "maxSize": "2048MB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "apkVersionCode",
	//     "expansionFileType"
	//   ],
	//   "parameters": {
	//     "apkVersionCode": {
	//       "description": "The version code of the APK whose expansion file configuration is being read or modified.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "expansionFileType": {
	//       "description": "The file type of the file configuration which is being read or modified.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks/{apkVersionCode}/expansionFiles/{expansionFileType}",
	//   "response": {
	//     "$ref": "ExpansionFilesUploadResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.edits.images.delete":

type EditsImagesDeleteCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	imageType   string
	imageId     string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Delete: Deletes the image (specified by id) from the edit.
func (r *EditsImagesService) Delete(packageName string, editId string, language string, imageType string, imageId string) *EditsImagesDeleteCall {
	c := &EditsImagesDeleteCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	c.imageType = imageType
	c.imageId = imageId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsImagesDeleteCall) Param(name, value string) *EditsImagesDeleteCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsImagesDeleteCall) AddScope(scope string) *EditsImagesDeleteCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsImagesDeleteCall) Delegate(d gensupport.Delegate) *EditsImagesDeleteCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsImagesDeleteCall) Fields(s ...googleapi.Field) *EditsImagesDeleteCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsImagesDeleteCall) Context(ctx context.Context) *EditsImagesDeleteCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsImagesDeleteCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsImagesDeleteCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.images.delete", HTTPMethod: "DELETE"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}/{imageId}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
			"imageType":   c.imageType,
			"imageId":     c.imageId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.images.delete" call.
func (c *EditsImagesDeleteCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Deletes the image (specified by id) from the edit.",
	//   "httpMethod": "DELETE",
	//   "id": "androidpublisher.edits.images.delete",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language",
	//     "imageType",
	//     "imageId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "imageId": {
	//       "description": "Unique identifier an image within the set of images attached to this edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "imageType": {
	//       "description": "Type of the Image. Providing an image type that refers to no images is a no-op.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}/{imageId}",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.images.deleteall":

type EditsImagesDeleteallCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	imageType   string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Deleteall: Deletes all images for the specified language and image
// type. Returns an empty response if no images are found.
func (r *EditsImagesService) Deleteall(packageName string, editId string, language string, imageType string) *EditsImagesDeleteallCall {
	c := &EditsImagesDeleteallCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	c.imageType = imageType
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsImagesDeleteallCall) Param(name, value string) *EditsImagesDeleteallCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsImagesDeleteallCall) AddScope(scope string) *EditsImagesDeleteallCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsImagesDeleteallCall) Delegate(d gensupport.Delegate) *EditsImagesDeleteallCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsImagesDeleteallCall) Fields(s ...googleapi.Field) *EditsImagesDeleteallCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsImagesDeleteallCall) Context(ctx context.Context) *EditsImagesDeleteallCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsImagesDeleteallCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsImagesDeleteallCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.images.deleteall", HTTPMethod: "DELETE"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
			"imageType":   c.imageType,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.images.deleteall" call.
// Exactly one of *ImagesDeleteAllResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ImagesDeleteAllResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsImagesDeleteallCall) Do(opts ...googleapi.CallOption) (*ImagesDeleteAllResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ImagesDeleteAllResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Deletes all images for the specified language and image type. Returns an empty response if no images are found.",
	//   "httpMethod": "DELETE",
	//   "id": "androidpublisher.edits.images.deleteall",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language",
	//     "imageType"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "imageType": {
	//       "description": "Type of the Image. Providing an image type that refers to no images is a no-op.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
	//   "response": {
	//     "$ref": "ImagesDeleteAllResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.images.list":

type EditsImagesListCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	imageType   string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all images. The response may be empty.
func (r *EditsImagesService) List(packageName string, editId string, language string, imageType string) *EditsImagesListCall {
	c := &EditsImagesListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	c.imageType = imageType
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsImagesListCall) Param(name, value string) *EditsImagesListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsImagesListCall) AddScope(scope string) *EditsImagesListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsImagesListCall) Delegate(d gensupport.Delegate) *EditsImagesListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsImagesListCall) Fields(s ...googleapi.Field) *EditsImagesListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsImagesListCall) Context(ctx context.Context) *EditsImagesListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsImagesListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsImagesListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.images.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
			"imageType":   c.imageType,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.images.list" call.
// Exactly one of *ImagesListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ImagesListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsImagesListCall) Do(opts ...googleapi.CallOption) (*ImagesListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ImagesListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all images. The response may be empty.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.images.list",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language",
	//     "imageType"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "imageType": {
	//       "description": "Type of the Image. Providing an image type that refers to no images is a no-op.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
	//   "response": {
	//     "$ref": "ImagesListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.images.upload":

type EditsImagesUploadCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	imageType   string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	media_      io.Reader
	mediaOpts_  []googleapi.MediaOption
	ctx_        context.Context
	header_     http.Header
}

// Upload: Uploads an image of the specified language and image type,
// and adds to the edit.
func (r *EditsImagesService) Upload(packageName string, editId string, language string, imageType string) *EditsImagesUploadCall {
	c := &EditsImagesUploadCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	c.imageType = imageType
	return c
}

// Media specifies the media to upload. At most 15MB (15728640 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: image/*.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *EditsImagesUploadCall) Media(r io.Reader, options ...googleapi.MediaOption) *EditsImagesUploadCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsImagesUploadCall) Param(name, value string) *EditsImagesUploadCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsImagesUploadCall) AddScope(scope string) *EditsImagesUploadCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsImagesUploadCall) Delegate(d gensupport.Delegate) *EditsImagesUploadCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsImagesUploadCall) Fields(s ...googleapi.Field) *EditsImagesUploadCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsImagesUploadCall) Context(ctx context.Context) *EditsImagesUploadCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsImagesUploadCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsImagesUploadCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.edits.images.upload", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
		UploadPath: "upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
			"imageType":   c.imageType,
		},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   15728640,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.edits.images.upload" call.
// Exactly one of *ImagesUploadResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ImagesUploadResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsImagesUploadCall) Do(opts ...googleapi.CallOption) (*ImagesUploadResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ImagesUploadResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads an image of the specified language and image type, and adds to the edit.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.edits.images.upload",
	//   "mediaUpload": {
	//     "accept": [
	//       "image/*"
	//     ],
	//     "maxSize": "15MB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language",
	//     "imageType"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "imageType": {
	//       "description": "Type of the Image. Providing an image type that refers to no images is a no-op.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}/{imageType}",
	//   "response": {
	//     "$ref": "ImagesUploadResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.edits.listings.delete":

type EditsListingsDeleteCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Delete: Deletes a localized store listing.
func (r *EditsListingsService) Delete(packageName string, editId string, language string) *EditsListingsDeleteCall {
	c := &EditsListingsDeleteCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsListingsDeleteCall) Param(name, value string) *EditsListingsDeleteCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsListingsDeleteCall) AddScope(scope string) *EditsListingsDeleteCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsListingsDeleteCall) Delegate(d gensupport.Delegate) *EditsListingsDeleteCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsListingsDeleteCall) Fields(s ...googleapi.Field) *EditsListingsDeleteCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsListingsDeleteCall) Context(ctx context.Context) *EditsListingsDeleteCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsListingsDeleteCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsListingsDeleteCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.listings.delete", HTTPMethod: "DELETE"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.listings.delete" call.
func (c *EditsListingsDeleteCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Deletes a localized store listing.",
	//   "httpMethod": "DELETE",
	//   "id": "androidpublisher.edits.listings.delete",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.listings.deleteall":

type EditsListingsDeleteallCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Deleteall: Deletes all store listings.
func (r *EditsListingsService) Deleteall(packageName string, editId string) *EditsListingsDeleteallCall {
	c := &EditsListingsDeleteallCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsListingsDeleteallCall) Param(name, value string) *EditsListingsDeleteallCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsListingsDeleteallCall) AddScope(scope string) *EditsListingsDeleteallCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsListingsDeleteallCall) Delegate(d gensupport.Delegate) *EditsListingsDeleteallCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsListingsDeleteallCall) Fields(s ...googleapi.Field) *EditsListingsDeleteallCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsListingsDeleteallCall) Context(ctx context.Context) *EditsListingsDeleteallCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsListingsDeleteallCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsListingsDeleteallCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.listings.deleteall", HTTPMethod: "DELETE"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.listings.deleteall" call.
func (c *EditsListingsDeleteallCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Deletes all store listings.",
	//   "httpMethod": "DELETE",
	//   "id": "androidpublisher.edits.listings.deleteall",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.listings.get":

type EditsListingsGetCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets a localized store listing.
func (r *EditsListingsService) Get(packageName string, editId string, language string) *EditsListingsGetCall {
	c := &EditsListingsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsListingsGetCall) Param(name, value string) *EditsListingsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsListingsGetCall) AddScope(scope string) *EditsListingsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsListingsGetCall) Delegate(d gensupport.Delegate) *EditsListingsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsListingsGetCall) Fields(s ...googleapi.Field) *EditsListingsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsListingsGetCall) Context(ctx context.Context) *EditsListingsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsListingsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsListingsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.listings.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.listings.get" call.
// Exactly one of *Listing or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Listing.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsListingsGetCall) Do(opts ...googleapi.CallOption) (*Listing, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Listing{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets a localized store listing.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.listings.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
	//   "response": {
	//     "$ref": "Listing"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.listings.list":

type EditsListingsListCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all localized store listings.
func (r *EditsListingsService) List(packageName string, editId string) *EditsListingsListCall {
	c := &EditsListingsListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsListingsListCall) Param(name, value string) *EditsListingsListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsListingsListCall) AddScope(scope string) *EditsListingsListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsListingsListCall) Delegate(d gensupport.Delegate) *EditsListingsListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsListingsListCall) Fields(s ...googleapi.Field) *EditsListingsListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsListingsListCall) Context(ctx context.Context) *EditsListingsListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsListingsListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsListingsListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.listings.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.listings.list" call.
// Exactly one of *ListingsListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ListingsListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsListingsListCall) Do(opts ...googleapi.CallOption) (*ListingsListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ListingsListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all localized store listings.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.listings.list",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings",
	//   "response": {
	//     "$ref": "ListingsListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.listings.patch":

type EditsListingsPatchCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	listing     *Listing
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Patch: Patches a localized store listing.
func (r *EditsListingsService) Patch(packageName string, editId string, language string, listing *Listing) *EditsListingsPatchCall {
	c := &EditsListingsPatchCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	c.listing = listing
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsListingsPatchCall) Param(name, value string) *EditsListingsPatchCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsListingsPatchCall) AddScope(scope string) *EditsListingsPatchCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsListingsPatchCall) Delegate(d gensupport.Delegate) *EditsListingsPatchCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsListingsPatchCall) Fields(s ...googleapi.Field) *EditsListingsPatchCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsListingsPatchCall) Context(ctx context.Context) *EditsListingsPatchCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsListingsPatchCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsListingsPatchCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.listings.patch", HTTPMethod: "PATCH"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.listing,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.listings.patch" call.
// Exactly one of *Listing or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Listing.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsListingsPatchCall) Do(opts ...googleapi.CallOption) (*Listing, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Listing{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Patches a localized store listing.",
	//   "httpMethod": "PATCH",
	//   "id": "androidpublisher.edits.listings.patch",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
	//   "request": {
	//     "$ref": "Listing"
	//   },
	//   "response": {
	//     "$ref": "Listing"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.listings.update":

type EditsListingsUpdateCall struct {
	s           *Service
	packageName string
	editId      string
	language    string
	listing     *Listing
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Update: Creates or updates a localized store listing.
func (r *EditsListingsService) Update(packageName string, editId string, language string, listing *Listing) *EditsListingsUpdateCall {
	c := &EditsListingsUpdateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.language = language
	c.listing = listing
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsListingsUpdateCall) Param(name, value string) *EditsListingsUpdateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsListingsUpdateCall) AddScope(scope string) *EditsListingsUpdateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsListingsUpdateCall) Delegate(d gensupport.Delegate) *EditsListingsUpdateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsListingsUpdateCall) Fields(s ...googleapi.Field) *EditsListingsUpdateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsListingsUpdateCall) Context(ctx context.Context) *EditsListingsUpdateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsListingsUpdateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsListingsUpdateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.listings.update", HTTPMethod: "PUT"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"language":    c.language,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.listing,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.listings.update" call.
// Exactly one of *Listing or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Listing.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsListingsUpdateCall) Do(opts ...googleapi.CallOption) (*Listing, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Listing{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Creates or updates a localized store listing.",
	//   "httpMethod": "PUT",
	//   "id": "androidpublisher.edits.listings.update",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "language"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "language": {
	//       "description": "Language localization code (a BCP-47 language tag; for example, \"de-AT\" for Austrian German).",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/listings/{language}",
	//   "request": {
	//     "$ref": "Listing"
	//   },
	//   "response": {
	//     "$ref": "Listing"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.testers.get":

type EditsTestersGetCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets testers.
func (r *EditsTestersService) Get(packageName string, editId string, track string) *EditsTestersGetCall {
	c := &EditsTestersGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTestersGetCall) Param(name, value string) *EditsTestersGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTestersGetCall) AddScope(scope string) *EditsTestersGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTestersGetCall) Delegate(d gensupport.Delegate) *EditsTestersGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTestersGetCall) Fields(s ...googleapi.Field) *EditsTestersGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTestersGetCall) Context(ctx context.Context) *EditsTestersGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTestersGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTestersGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.testers.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/testers/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.testers.get" call.
// Exactly one of *Testers or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Testers.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTestersGetCall) Do(opts ...googleapi.CallOption) (*Testers, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Testers{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets testers.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.testers.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read or modify.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/testers/{track}",
	//   "response": {
	//     "$ref": "Testers"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.testers.patch":

type EditsTestersPatchCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	testers     *Testers
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Patch: Patches testers.
func (r *EditsTestersService) Patch(packageName string, editId string, track string, testers *Testers) *EditsTestersPatchCall {
	c := &EditsTestersPatchCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	c.testers = testers
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTestersPatchCall) Param(name, value string) *EditsTestersPatchCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTestersPatchCall) AddScope(scope string) *EditsTestersPatchCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTestersPatchCall) Delegate(d gensupport.Delegate) *EditsTestersPatchCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTestersPatchCall) Fields(s ...googleapi.Field) *EditsTestersPatchCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTestersPatchCall) Context(ctx context.Context) *EditsTestersPatchCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTestersPatchCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTestersPatchCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.testers.patch", HTTPMethod: "PATCH"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/testers/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.testers,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.testers.patch" call.
// Exactly one of *Testers or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Testers.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTestersPatchCall) Do(opts ...googleapi.CallOption) (*Testers, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Testers{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Patches testers.",
	//   "httpMethod": "PATCH",
	//   "id": "androidpublisher.edits.testers.patch",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read or modify.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/testers/{track}",
	//   "request": {
	//     "$ref": "Testers"
	//   },
	//   "response": {
	//     "$ref": "Testers"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.testers.update":

type EditsTestersUpdateCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	testers     *Testers
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Update: Updates testers.
func (r *EditsTestersService) Update(packageName string, editId string, track string, testers *Testers) *EditsTestersUpdateCall {
	c := &EditsTestersUpdateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	c.testers = testers
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTestersUpdateCall) Param(name, value string) *EditsTestersUpdateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTestersUpdateCall) AddScope(scope string) *EditsTestersUpdateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTestersUpdateCall) Delegate(d gensupport.Delegate) *EditsTestersUpdateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTestersUpdateCall) Fields(s ...googleapi.Field) *EditsTestersUpdateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTestersUpdateCall) Context(ctx context.Context) *EditsTestersUpdateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTestersUpdateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTestersUpdateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.testers.update", HTTPMethod: "PUT"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/testers/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.testers,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.testers.update" call.
// Exactly one of *Testers or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Testers.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTestersUpdateCall) Do(opts ...googleapi.CallOption) (*Testers, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Testers{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Updates testers.",
	//   "httpMethod": "PUT",
	//   "id": "androidpublisher.edits.testers.update",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read or modify.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/testers/{track}",
	//   "request": {
	//     "$ref": "Testers"
	//   },
	//   "response": {
	//     "$ref": "Testers"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.tracks.get":

type EditsTracksGetCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets a track.
func (r *EditsTracksService) Get(packageName string, editId string, track string) *EditsTracksGetCall {
	c := &EditsTracksGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTracksGetCall) Param(name, value string) *EditsTracksGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTracksGetCall) AddScope(scope string) *EditsTracksGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTracksGetCall) Delegate(d gensupport.Delegate) *EditsTracksGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTracksGetCall) Fields(s ...googleapi.Field) *EditsTracksGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTracksGetCall) Context(ctx context.Context) *EditsTracksGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTracksGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTracksGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.tracks.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.tracks.get" call.
// Exactly one of *Track or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Track.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTracksGetCall) Do(opts ...googleapi.CallOption) (*Track, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Track{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets a track.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.tracks.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read or modify.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks/{track}",
	//   "response": {
	//     "$ref": "Track"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.tracks.list":

type EditsTracksListCall struct {
	s           *Service
	packageName string
	editId      string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all tracks.
func (r *EditsTracksService) List(packageName string, editId string) *EditsTracksListCall {
	c := &EditsTracksListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTracksListCall) Param(name, value string) *EditsTracksListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTracksListCall) AddScope(scope string) *EditsTracksListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTracksListCall) Delegate(d gensupport.Delegate) *EditsTracksListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTracksListCall) Fields(s ...googleapi.Field) *EditsTracksListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTracksListCall) Context(ctx context.Context) *EditsTracksListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTracksListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTracksListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.tracks.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.tracks.list" call.
// Exactly one of *TracksListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *TracksListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTracksListCall) Do(opts ...googleapi.CallOption) (*TracksListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &TracksListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all tracks.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.edits.tracks.list",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks",
	//   "response": {
	//     "$ref": "TracksListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.tracks.patch":

type EditsTracksPatchCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	track2      *Track
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Patch: Patches a track.
func (r *EditsTracksService) Patch(packageName string, editId string, track string, track2 *Track) *EditsTracksPatchCall {
	c := &EditsTracksPatchCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	c.track2 = track2
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTracksPatchCall) Param(name, value string) *EditsTracksPatchCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTracksPatchCall) AddScope(scope string) *EditsTracksPatchCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTracksPatchCall) Delegate(d gensupport.Delegate) *EditsTracksPatchCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTracksPatchCall) Fields(s ...googleapi.Field) *EditsTracksPatchCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTracksPatchCall) Context(ctx context.Context) *EditsTracksPatchCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTracksPatchCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTracksPatchCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.tracks.patch", HTTPMethod: "PATCH"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.track2,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.tracks.patch" call.
// Exactly one of *Track or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Track.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTracksPatchCall) Do(opts ...googleapi.CallOption) (*Track, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Track{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Patches a track.",
	//   "httpMethod": "PATCH",
	//   "id": "androidpublisher.edits.tracks.patch",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read or modify.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks/{track}",
	//   "request": {
	//     "$ref": "Track"
	//   },
	//   "response": {
	//     "$ref": "Track"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.edits.tracks.update":

type EditsTracksUpdateCall struct {
	s           *Service
	packageName string
	editId      string
	track       string
	track2      *Track
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Update: Updates a track.
func (r *EditsTracksService) Update(packageName string, editId string, track string, track2 *Track) *EditsTracksUpdateCall {
	c := &EditsTracksUpdateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.editId = editId
	c.track = track
	c.track2 = track2
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *EditsTracksUpdateCall) Param(name, value string) *EditsTracksUpdateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *EditsTracksUpdateCall) AddScope(scope string) *EditsTracksUpdateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *EditsTracksUpdateCall) Delegate(d gensupport.Delegate) *EditsTracksUpdateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *EditsTracksUpdateCall) Fields(s ...googleapi.Field) *EditsTracksUpdateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *EditsTracksUpdateCall) Context(ctx context.Context) *EditsTracksUpdateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *EditsTracksUpdateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *EditsTracksUpdateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.edits.tracks.update", HTTPMethod: "PUT"},
		Path:   "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks/{track}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"editId":      c.editId,
			"track":       c.track,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.track2,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.edits.tracks.update" call.
// Exactly one of *Track or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Track.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *EditsTracksUpdateCall) Do(opts ...googleapi.CallOption) (*Track, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Track{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Updates a track.",
	//   "httpMethod": "PUT",
	//   "id": "androidpublisher.edits.tracks.update",
	//   "parameterOrder": [
	//     "packageName",
	//     "editId",
	//     "track"
	//   ],
	//   "parameters": {
	//     "editId": {
	//       "description": "Identifier of the edit.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "track": {
	//       "description": "The track to read or modify.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/edits/{editId}/tracks/{track}",
	//   "request": {
	//     "$ref": "Track"
	//   },
	//   "response": {
	//     "$ref": "Track"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.inappproducts.delete":

type InappproductsDeleteCall struct {
	s           *Service
	packageName string
	sku         string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Delete: Deletes an in-app product (i.e. a managed product or a
// subscriptions).
func (r *InappproductsService) Delete(packageName string, sku string) *InappproductsDeleteCall {
	c := &InappproductsDeleteCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.sku = sku
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InappproductsDeleteCall) Param(name, value string) *InappproductsDeleteCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InappproductsDeleteCall) AddScope(scope string) *InappproductsDeleteCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InappproductsDeleteCall) Delegate(d gensupport.Delegate) *InappproductsDeleteCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InappproductsDeleteCall) Fields(s ...googleapi.Field) *InappproductsDeleteCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InappproductsDeleteCall) Context(ctx context.Context) *InappproductsDeleteCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InappproductsDeleteCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InappproductsDeleteCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.inappproducts.delete", HTTPMethod: "DELETE"},
		Path:   "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"sku":         c.sku,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.inappproducts.delete" call.
func (c *InappproductsDeleteCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Deletes an in-app product (i.e. a managed product or a subscriptions).",
	//   "httpMethod": "DELETE",
	//   "id": "androidpublisher.inappproducts.delete",
	//   "parameterOrder": [
	//     "packageName",
	//     "sku"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "sku": {
	//       "description": "Unique identifier for the in-app product.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.inappproducts.get":

type InappproductsGetCall struct {
	s           *Service
	packageName string
	sku         string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets an in-app product, which can be a managed product or a
// subscription.
func (r *InappproductsService) Get(packageName string, sku string) *InappproductsGetCall {
	c := &InappproductsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.sku = sku
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InappproductsGetCall) Param(name, value string) *InappproductsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InappproductsGetCall) AddScope(scope string) *InappproductsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InappproductsGetCall) Delegate(d gensupport.Delegate) *InappproductsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InappproductsGetCall) Fields(s ...googleapi.Field) *InappproductsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InappproductsGetCall) Context(ctx context.Context) *InappproductsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InappproductsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InappproductsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.inappproducts.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"sku":         c.sku,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.inappproducts.get" call.
// Exactly one of *InAppProduct or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *InAppProduct.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *InappproductsGetCall) Do(opts ...googleapi.CallOption) (*InAppProduct, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InAppProduct{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets an in-app product, which can be a managed product or a subscription.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.inappproducts.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "sku"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "sku": {
	//       "description": "Unique identifier for the in-app product.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
	//   "response": {
	//     "$ref": "InAppProduct"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.inappproducts.insert":

type InappproductsInsertCall struct {
	s            *Service
	packageName  string
	inappproduct *InAppProduct
	urlParams_   gensupport.URLParams
	extra_       map[string]string
	scopes_      []string
	delegate_    gensupport.Delegate
	ctx_         context.Context
	header_      http.Header
}

// Insert: Creates an in-app product (i.e. a managed product or a
// subscriptions).
func (r *InappproductsService) Insert(packageName string, inappproduct *InAppProduct) *InappproductsInsertCall {
	c := &InappproductsInsertCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.inappproduct = inappproduct
	return c
}

// AutoConvertMissingPrices sets the optional parameter
// "autoConvertMissingPrices": If true the prices for all regions
// targeted by the parent app that don't have a price specified for this
// in-app product will be auto converted to the target currency based on
// the default price. Defaults to false.
func (c *InappproductsInsertCall) AutoConvertMissingPrices(autoConvertMissingPrices bool) *InappproductsInsertCall {
	c.urlParams_.Set("autoConvertMissingPrices", fmt.Sprint(autoConvertMissingPrices))
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InappproductsInsertCall) Param(name, value string) *InappproductsInsertCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InappproductsInsertCall) AddScope(scope string) *InappproductsInsertCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InappproductsInsertCall) Delegate(d gensupport.Delegate) *InappproductsInsertCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InappproductsInsertCall) Fields(s ...googleapi.Field) *InappproductsInsertCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InappproductsInsertCall) Context(ctx context.Context) *InappproductsInsertCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InappproductsInsertCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InappproductsInsertCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.inappproducts.insert", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/inappproducts",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Reserved: []string{"autoConvertMissingPrices"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.inappproduct,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.inappproducts.insert" call.
// Exactly one of *InAppProduct or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *InAppProduct.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *InappproductsInsertCall) Do(opts ...googleapi.CallOption) (*InAppProduct, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InAppProduct{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Creates an in-app product (i.e. a managed product or a subscriptions).",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.inappproducts.insert",
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "autoConvertMissingPrices": {
	//       "description": "If true the prices for all regions targeted by the parent app that don't have a price specified for this in-app product will be auto converted to the target currency based on the default price. Defaults to false.",
	//       "location": "query",
	//       "type": "boolean"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/inappproducts",
	//   "request": {
	//     "$ref": "InAppProduct"
	//   },
	//   "response": {
	//     "$ref": "InAppProduct"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.inappproducts.list":

type InappproductsListCall struct {
	s           *Service
	packageName string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all in-app products - both managed products and
// subscriptions.
func (r *InappproductsService) List(packageName string) *InappproductsListCall {
	c := &InappproductsListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	return c
}

// MaxResults sets the optional parameter "maxResults": How many results
// the list operation should return.
func (c *InappproductsListCall) MaxResults(maxResults int64) *InappproductsListCall {
	c.urlParams_.Set("maxResults", fmt.Sprint(maxResults))
	return c
}

// StartIndex sets the optional parameter "startIndex": The index of the
// first element to return.
func (c *InappproductsListCall) StartIndex(startIndex int64) *InappproductsListCall {
	c.urlParams_.Set("startIndex", fmt.Sprint(startIndex))
	return c
}

// Token sets the optional parameter "token": Pagination token. If
// empty, list starts at the first product.
func (c *InappproductsListCall) Token(token string) *InappproductsListCall {
	c.urlParams_.Set("token", token)
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InappproductsListCall) Param(name, value string) *InappproductsListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InappproductsListCall) AddScope(scope string) *InappproductsListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InappproductsListCall) Delegate(d gensupport.Delegate) *InappproductsListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InappproductsListCall) Fields(s ...googleapi.Field) *InappproductsListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InappproductsListCall) Context(ctx context.Context) *InappproductsListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InappproductsListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InappproductsListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.inappproducts.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/inappproducts",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Reserved: []string{"maxResults", "startIndex", "token"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.inappproducts.list" call.
// Exactly one of *InappproductsListResponse or error will be non-nil.
// Any non-2xx status code is an error. Response headers are in either
// *InappproductsListResponse.ServerResponse.Header or (if a response
// was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *InappproductsListCall) Do(opts ...googleapi.CallOption) (*InappproductsListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InappproductsListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all in-app products - both managed products and subscriptions.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.inappproducts.list",
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "maxResults": {
	//       "description": "How many results the list operation should return.",
	//       "format": "uint32",
	//       "location": "query",
	//       "type": "integer"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "startIndex": {
	//       "description": "The index of the first element to return.",
	//       "format": "uint32",
	//       "location": "query",
	//       "type": "integer"
	//     },
	//     "token": {
	//       "description": "Pagination token. If empty, list starts at the first product.",
	//       "location": "query",
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/inappproducts",
	//   "response": {
	//     "$ref": "InappproductsListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *InappproductsListCall) Pages(ctx context.Context, f func(*InappproductsListResponse) error) error {
	c.ctx_ = ctx
	// reset paging to original point
	if c.urlParams_.Has("token") {
		defer c.Token(c.urlParams_.Get("token"))
	} else {
		defer c.urlParams_.Del("token")
	}
	for {
		x, err := c.Do()
		if err != nil {
			return err
		}
		if err := f(x); err != nil {
			return err
		}
		if x.TokenPagination == nil || x.TokenPagination.NextPageToken == "" {
			return nil
		}
		c.Token(x.TokenPagination.NextPageToken)
	}
}

// method id "androidpublisher.inappproducts.patch":

type InappproductsPatchCall struct {
	s            *Service
	packageName  string
	sku          string
	inappproduct *InAppProduct
	urlParams_   gensupport.URLParams
	extra_       map[string]string
	scopes_      []string
	delegate_    gensupport.Delegate
	ctx_         context.Context
	header_      http.Header
}

// Patch: Patches an in-app product (i.e. a managed product or a
// subscriptions).
func (r *InappproductsService) Patch(packageName string, sku string, inappproduct *InAppProduct) *InappproductsPatchCall {
	c := &InappproductsPatchCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.sku = sku
	c.inappproduct = inappproduct
	return c
}

// AutoConvertMissingPrices sets the optional parameter
// "autoConvertMissingPrices": If true the prices for all regions
// targeted by the parent app that don't have a price specified for this
// in-app product will be auto converted to the target currency based on
// the default price. Defaults to false.
func (c *InappproductsPatchCall) AutoConvertMissingPrices(autoConvertMissingPrices bool) *InappproductsPatchCall {
	c.urlParams_.Set("autoConvertMissingPrices", fmt.Sprint(autoConvertMissingPrices))
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InappproductsPatchCall) Param(name, value string) *InappproductsPatchCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InappproductsPatchCall) AddScope(scope string) *InappproductsPatchCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InappproductsPatchCall) Delegate(d gensupport.Delegate) *InappproductsPatchCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InappproductsPatchCall) Fields(s ...googleapi.Field) *InappproductsPatchCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InappproductsPatchCall) Context(ctx context.Context) *InappproductsPatchCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InappproductsPatchCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InappproductsPatchCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.inappproducts.patch", HTTPMethod: "PATCH"},
		Path:   "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"sku":         c.sku,
		},
		Reserved: []string{"autoConvertMissingPrices"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.inappproduct,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.inappproducts.patch" call.
// Exactly one of *InAppProduct or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *InAppProduct.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *InappproductsPatchCall) Do(opts ...googleapi.CallOption) (*InAppProduct, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InAppProduct{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Patches an in-app product (i.e. a managed product or a subscriptions).",
	//   "httpMethod": "PATCH",
	//   "id": "androidpublisher.inappproducts.patch",
	//   "parameterOrder": [
	//     "packageName",
	//     "sku"
	//   ],
	//   "parameters": {
	//     "autoConvertMissingPrices": {
	//       "description": "If true the prices for all regions targeted by the parent app that don't have a price specified for this in-app product will be auto converted to the target currency based on the default price. Defaults to false.",
	//       "location": "query",
	//       "type": "boolean"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "sku": {
	//       "description": "Unique identifier for the in-app product.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
	//   "request": {
	//     "$ref": "InAppProduct"
	//   },
	//   "response": {
	//     "$ref": "InAppProduct"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.inappproducts.update":

type InappproductsUpdateCall struct {
	s            *Service
	packageName  string
	sku          string
	inappproduct *InAppProduct
	urlParams_   gensupport.URLParams
	extra_       map[string]string
	scopes_      []string
	delegate_    gensupport.Delegate
	ctx_         context.Context
	header_      http.Header
}

// Update: Updates an in-app product (i.e. a managed product or a
// subscriptions).
func (r *InappproductsService) Update(packageName string, sku string, inappproduct *InAppProduct) *InappproductsUpdateCall {
	c := &InappproductsUpdateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.sku = sku
	c.inappproduct = inappproduct
	return c
}

// AllowMissing sets the optional parameter "allowMissing": If set to
// true, and the in-app product with the given package_name and sku
// doesn't exist, the in-app product will be created.
func (c *InappproductsUpdateCall) AllowMissing(allowMissing bool) *InappproductsUpdateCall {
	c.urlParams_.Set("allowMissing", fmt.Sprint(allowMissing))
	return c
}

// AutoConvertMissingPrices sets the optional parameter
// "autoConvertMissingPrices": If true the prices for all regions
// targeted by the parent app that don't have a price specified for this
// in-app product will be auto converted to the target currency based on
// the default price. Defaults to false.
func (c *InappproductsUpdateCall) AutoConvertMissingPrices(autoConvertMissingPrices bool) *InappproductsUpdateCall {
	c.urlParams_.Set("autoConvertMissingPrices", fmt.Sprint(autoConvertMissingPrices))
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InappproductsUpdateCall) Param(name, value string) *InappproductsUpdateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InappproductsUpdateCall) AddScope(scope string) *InappproductsUpdateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InappproductsUpdateCall) Delegate(d gensupport.Delegate) *InappproductsUpdateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InappproductsUpdateCall) Fields(s ...googleapi.Field) *InappproductsUpdateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InappproductsUpdateCall) Context(ctx context.Context) *InappproductsUpdateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InappproductsUpdateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InappproductsUpdateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.inappproducts.update", HTTPMethod: "PUT"},
		Path:   "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"sku":         c.sku,
		},
		Reserved: []string{"allowMissing", "autoConvertMissingPrices"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.inappproduct,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.inappproducts.update" call.
// Exactly one of *InAppProduct or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *InAppProduct.ServerResponse.Header or (if a response was returned at
// all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *InappproductsUpdateCall) Do(opts ...googleapi.CallOption) (*InAppProduct, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InAppProduct{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Updates an in-app product (i.e. a managed product or a subscriptions).",
	//   "httpMethod": "PUT",
	//   "id": "androidpublisher.inappproducts.update",
	//   "parameterOrder": [
	//     "packageName",
	//     "sku"
	//   ],
	//   "parameters": {
	//     "allowMissing": {
	//       "description": "If set to true, and the in-app product with the given package_name and sku doesn't exist, the in-app product will be created.",
	//       "location": "query",
	//       "type": "boolean"
	//     },
	//     "autoConvertMissingPrices": {
	//       "description": "If true the prices for all regions targeted by the parent app that don't have a price specified for this in-app product will be auto converted to the target currency based on the default price. Defaults to false.",
	//       "location": "query",
	//       "type": "boolean"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "sku": {
	//       "description": "Unique identifier for the in-app product.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/inappproducts/{sku}",
	//   "request": {
	//     "$ref": "InAppProduct"
	//   },
	//   "response": {
	//     "$ref": "InAppProduct"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.internalappsharingartifacts.uploadapk":

type InternalappsharingartifactsUploadapkCall struct {
	s           *Service
	packageName string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	media_      io.Reader
	mediaOpts_  []googleapi.MediaOption
	ctx_        context.Context
	header_     http.Header
}

// Uploadapk: Uploads an APK to internal app sharing. If you are using
// the Google API client libraries, please increase the timeout of the
// http request before calling this endpoint (a timeout of 2 minutes is
// recommended). See [Timeouts and
// Errors](https://developers.google.com/api-client-library/java/google-api-java-client/errors)
// for an example in java.
func (r *InternalappsharingartifactsService) Uploadapk(packageName string) *InternalappsharingartifactsUploadapkCall {
	c := &InternalappsharingartifactsUploadapkCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	return c
}

// Media specifies the media to upload. At most 1GB (1073741824 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: application/octet-stream, application/vnd.android.package-archive.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *InternalappsharingartifactsUploadapkCall) Media(r io.Reader, options ...googleapi.MediaOption) *InternalappsharingartifactsUploadapkCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InternalappsharingartifactsUploadapkCall) Param(name, value string) *InternalappsharingartifactsUploadapkCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InternalappsharingartifactsUploadapkCall) AddScope(scope string) *InternalappsharingartifactsUploadapkCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InternalappsharingartifactsUploadapkCall) Delegate(d gensupport.Delegate) *InternalappsharingartifactsUploadapkCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InternalappsharingartifactsUploadapkCall) Fields(s ...googleapi.Field) *InternalappsharingartifactsUploadapkCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InternalappsharingartifactsUploadapkCall) Context(ctx context.Context) *InternalappsharingartifactsUploadapkCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InternalappsharingartifactsUploadapkCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InternalappsharingartifactsUploadapkCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.internalappsharingartifacts.uploadapk", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/apk",
		UploadPath: "upload/androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/apk",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   1073741824,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.internalappsharingartifacts.uploadapk" call.
// Exactly one of *InternalAppSharingArtifact or error will be non-nil.
// Any non-2xx status code is an error. Response headers are in either
// *InternalAppSharingArtifact.ServerResponse.Header or (if a response
// was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *InternalappsharingartifactsUploadapkCall) Do(opts ...googleapi.CallOption) (*InternalAppSharingArtifact, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InternalAppSharingArtifact{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads an APK to internal app sharing. If you are using the Google API client libraries, please increase the timeout of the http request before calling this endpoint (a timeout of 2 minutes is recommended). See [Timeouts and Errors](https://developers.google.com/api-client-library/java/google-api-java-client/errors) for an example in java.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.internalappsharingartifacts.uploadapk",
	//   "mediaUpload": {
	//     "accept": [
	//       "application/octet-stream",
	//       "application/vnd.android.package-archive"
	//     ],
	//     "maxSize": "1GB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/apk"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/apk",
	//   "response": {
	//     "$ref": "InternalAppSharingArtifact"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.internalappsharingartifacts.uploadbundle":

type InternalappsharingartifactsUploadbundleCall struct {
	s           *Service
	packageName string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	media_      io.Reader
	mediaOpts_  []googleapi.MediaOption
	ctx_        context.Context
	header_     http.Header
}

// Uploadbundle: Uploads an app bundle to internal app sharing. If you
// are using the Google API client libraries, please increase the
// timeout of the http request before calling this endpoint (a timeout
// of 2 minutes is recommended). See [Timeouts and
// Errors](https://developers.google.com/api-client-library/java/google-api-java-client/errors)
// for an example in java.
func (r *InternalappsharingartifactsService) Uploadbundle(packageName string) *InternalappsharingartifactsUploadbundleCall {
	c := &InternalappsharingartifactsUploadbundleCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	return c
}

// Media specifies the media to upload. At most 10GB (10737418240 bytes) are
// accepted; a larger media fails the call before anything is sent.
// Accepted types: application/octet-stream.
//
// A reader with no known size (not an io.Seeker, nor offering Size or Len)
// is read fully into memory before sending, up to one byte past the limit.
// Pass an *os.File or another io.Seeker to stream the media instead.
//
// The content type is sniffed from the media unless given with
// googleapi.ContentType.
func (c *InternalappsharingartifactsUploadbundleCall) Media(r io.Reader, options ...googleapi.MediaOption) *InternalappsharingartifactsUploadbundleCall {
	c.media_ = r
	c.mediaOpts_ = options
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *InternalappsharingartifactsUploadbundleCall) Param(name, value string) *InternalappsharingartifactsUploadbundleCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *InternalappsharingartifactsUploadbundleCall) AddScope(scope string) *InternalappsharingartifactsUploadbundleCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *InternalappsharingartifactsUploadbundleCall) Delegate(d gensupport.Delegate) *InternalappsharingartifactsUploadbundleCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *InternalappsharingartifactsUploadbundleCall) Fields(s ...googleapi.Field) *InternalappsharingartifactsUploadbundleCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *InternalappsharingartifactsUploadbundleCall) Context(ctx context.Context) *InternalappsharingartifactsUploadbundleCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *InternalappsharingartifactsUploadbundleCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *InternalappsharingartifactsUploadbundleCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method:     gensupport.MethodInfo{ID: "androidpublisher.internalappsharingartifacts.uploadbundle", HTTPMethod: "POST"},
		Path:       "androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/bundle",
		UploadPath: "upload/androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/bundle",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Params:       c.urlParams_,
		Extra:        c.extra_,
		Alt:          alt,
		Header:       c.header_,
		Media:        c.media_,
		MediaOptions: c.mediaOpts_,
		MediaLimit:   10737418240,
		Scopes:       c.scopes_,
		Delegate:     c.delegate_,
		Result:       result,
	})
}

// Do executes the "androidpublisher.internalappsharingartifacts.uploadbundle" call.
// Exactly one of *InternalAppSharingArtifact or error will be non-nil.
// Any non-2xx status code is an error. Response headers are in either
// *InternalAppSharingArtifact.ServerResponse.Header or (if a response
// was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *InternalappsharingartifactsUploadbundleCall) Do(opts ...googleapi.CallOption) (*InternalAppSharingArtifact, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &InternalAppSharingArtifact{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Uploads an app bundle to internal app sharing. If you are using the Google API client libraries, please increase the timeout of the http request before calling this endpoint (a timeout of 2 minutes is recommended). See [Timeouts and Errors](https://developers.google.com/api-client-library/java/google-api-java-client/errors) for an example in java.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.internalappsharingartifacts.uploadbundle",
	//   "mediaUpload": {
	//     "accept": [
	//       "application/octet-stream"
	//     ],
	//     "maxSize": "10GB",
	//     "protocols": {
	//       "simple": {
	//         "multipart": true,
	//         "path": "/upload/androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/bundle"
	//       }
	//     }
	//   },
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/internalappsharing/{packageName}/artifacts/bundle",
	//   "response": {
	//     "$ref": "InternalAppSharingArtifact"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaUpload": true
	// }
}

// method id "androidpublisher.orders.refund":

type OrdersRefundCall struct {
	s           *Service
	packageName string
	orderId     string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Refund: Refund a user's subscription or in-app purchase order.
func (r *OrdersService) Refund(packageName string, orderId string) *OrdersRefundCall {
	c := &OrdersRefundCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.orderId = orderId
	return c
}

// Revoke sets the optional parameter "revoke": Whether to revoke the
// purchased item. If set to true, access to the subscription or in-app
// item will be terminated immediately. If the item is a recurring
// subscription, all future payments will also be terminated. Consumed
// in-app items need to be handled by developer's app. (optional).
func (c *OrdersRefundCall) Revoke(revoke bool) *OrdersRefundCall {
	c.urlParams_.Set("revoke", fmt.Sprint(revoke))
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *OrdersRefundCall) Param(name, value string) *OrdersRefundCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *OrdersRefundCall) AddScope(scope string) *OrdersRefundCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *OrdersRefundCall) Delegate(d gensupport.Delegate) *OrdersRefundCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *OrdersRefundCall) Fields(s ...googleapi.Field) *OrdersRefundCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *OrdersRefundCall) Context(ctx context.Context) *OrdersRefundCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *OrdersRefundCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *OrdersRefundCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.orders.refund", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/orders/{orderId}:refund",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"orderId":     c.orderId,
		},
		Reserved: []string{"revoke"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.orders.refund" call.
func (c *OrdersRefundCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Refund a user's subscription or in-app purchase order.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.orders.refund",
	//   "parameterOrder": [
	//     "packageName",
	//     "orderId"
	//   ],
	//   "parameters": {
	//     "orderId": {
	//       "description": "The order ID provided to the user when the subscription or in-app order was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription or in-app item was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "revoke": {
	//       "description": "Whether to revoke the purchased item. If set to true, access to the subscription or in-app item will be terminated immediately. If the item is a recurring subscription, all future payments will also be terminated. Consumed in-app items need to be handled by developer's app. (optional).",
	//       "location": "query",
	//       "type": "boolean"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/orders/{orderId}:refund",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.products.acknowledge":

type PurchasesProductsAcknowledgeCall struct {
	s                                  *Service
	packageName                        string
	productId                          string
	token                              string
	productpurchasesacknowledgerequest *ProductPurchasesAcknowledgeRequest
	urlParams_                         gensupport.URLParams
	extra_                             map[string]string
	scopes_                            []string
	delegate_                          gensupport.Delegate
	ctx_                               context.Context
	header_                            http.Header
}

// Acknowledge: Acknowledges a purchase of an inapp item.
func (r *PurchasesProductsService) Acknowledge(packageName string, productId string, token string, productpurchasesacknowledgerequest *ProductPurchasesAcknowledgeRequest) *PurchasesProductsAcknowledgeCall {
	c := &PurchasesProductsAcknowledgeCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.productId = productId
	c.token = token
	c.productpurchasesacknowledgerequest = productpurchasesacknowledgerequest
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesProductsAcknowledgeCall) Param(name, value string) *PurchasesProductsAcknowledgeCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesProductsAcknowledgeCall) AddScope(scope string) *PurchasesProductsAcknowledgeCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesProductsAcknowledgeCall) Delegate(d gensupport.Delegate) *PurchasesProductsAcknowledgeCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesProductsAcknowledgeCall) Fields(s ...googleapi.Field) *PurchasesProductsAcknowledgeCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesProductsAcknowledgeCall) Context(ctx context.Context) *PurchasesProductsAcknowledgeCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesProductsAcknowledgeCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesProductsAcknowledgeCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.products.acknowledge", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/products/{productId}/tokens/{token}:acknowledge",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"productId":   c.productId,
			"token":       c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.productpurchasesacknowledgerequest,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.products.acknowledge" call.
func (c *PurchasesProductsAcknowledgeCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Acknowledges a purchase of an inapp item.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.purchases.products.acknowledge",
	//   "parameterOrder": [
	//     "packageName",
	//     "productId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application the inapp product was sold in (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "productId": {
	//       "description": "The inapp product SKU (for example, 'com.some.thing.inapp1').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the inapp product was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/products/{productId}/tokens/{token}:acknowledge",
	//   "request": {
	//     "$ref": "ProductPurchasesAcknowledgeRequest"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.products.get":

type PurchasesProductsGetCall struct {
	s           *Service
	packageName string
	productId   string
	token       string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Checks the purchase and consumption status of an inapp item.
func (r *PurchasesProductsService) Get(packageName string, productId string, token string) *PurchasesProductsGetCall {
	c := &PurchasesProductsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.productId = productId
	c.token = token
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesProductsGetCall) Param(name, value string) *PurchasesProductsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesProductsGetCall) AddScope(scope string) *PurchasesProductsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesProductsGetCall) Delegate(d gensupport.Delegate) *PurchasesProductsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesProductsGetCall) Fields(s ...googleapi.Field) *PurchasesProductsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesProductsGetCall) Context(ctx context.Context) *PurchasesProductsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesProductsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesProductsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.products.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/products/{productId}/tokens/{token}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"productId":   c.productId,
			"token":       c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.products.get" call.
// Exactly one of *ProductPurchase or error will be non-nil. Any non-2xx
// status code is an error. Response headers are in either
// *ProductPurchase.ServerResponse.Header or (if a response was returned
// at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *PurchasesProductsGetCall) Do(opts ...googleapi.CallOption) (*ProductPurchase, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ProductPurchase{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Checks the purchase and consumption status of an inapp item.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.purchases.products.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "productId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application the inapp product was sold in (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "productId": {
	//       "description": "The inapp product SKU (for example, 'com.some.thing.inapp1').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the inapp product was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/products/{productId}/tokens/{token}",
	//   "response": {
	//     "$ref": "ProductPurchase"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.subscriptions.acknowledge":

type PurchasesSubscriptionsAcknowledgeCall struct {
	s                                       *Service
	packageName                             string
	subscriptionId                          string
	token                                   string
	subscriptionpurchasesacknowledgerequest *SubscriptionPurchasesAcknowledgeRequest
	urlParams_                              gensupport.URLParams
	extra_                                  map[string]string
	scopes_                                 []string
	delegate_                               gensupport.Delegate
	ctx_                                    context.Context
	header_                                 http.Header
}

// Acknowledge: Acknowledges a subscription purchase.
func (r *PurchasesSubscriptionsService) Acknowledge(packageName string, subscriptionId string, token string, subscriptionpurchasesacknowledgerequest *SubscriptionPurchasesAcknowledgeRequest) *PurchasesSubscriptionsAcknowledgeCall {
	c := &PurchasesSubscriptionsAcknowledgeCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.subscriptionId = subscriptionId
	c.token = token
	c.subscriptionpurchasesacknowledgerequest = subscriptionpurchasesacknowledgerequest
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesSubscriptionsAcknowledgeCall) Param(name, value string) *PurchasesSubscriptionsAcknowledgeCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesSubscriptionsAcknowledgeCall) AddScope(scope string) *PurchasesSubscriptionsAcknowledgeCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesSubscriptionsAcknowledgeCall) Delegate(d gensupport.Delegate) *PurchasesSubscriptionsAcknowledgeCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesSubscriptionsAcknowledgeCall) Fields(s ...googleapi.Field) *PurchasesSubscriptionsAcknowledgeCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesSubscriptionsAcknowledgeCall) Context(ctx context.Context) *PurchasesSubscriptionsAcknowledgeCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesSubscriptionsAcknowledgeCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesSubscriptionsAcknowledgeCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.subscriptions.acknowledge", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:acknowledge",
		PathParams: map[string]string{
			"packageName":    c.packageName,
			"subscriptionId": c.subscriptionId,
			"token":          c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.subscriptionpurchasesacknowledgerequest,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.subscriptions.acknowledge" call.
func (c *PurchasesSubscriptionsAcknowledgeCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Acknowledges a subscription purchase.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.purchases.subscriptions.acknowledge",
	//   "parameterOrder": [
	//     "packageName",
	//     "subscriptionId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "subscriptionId": {
	//       "description": "The purchased subscription ID (for example, 'monthly001').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the subscription was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:acknowledge",
	//   "request": {
	//     "$ref": "SubscriptionPurchasesAcknowledgeRequest"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.subscriptions.cancel":

type PurchasesSubscriptionsCancelCall struct {
	s              *Service
	packageName    string
	subscriptionId string
	token          string
	urlParams_     gensupport.URLParams
	extra_         map[string]string
	scopes_        []string
	delegate_      gensupport.Delegate
	ctx_           context.Context
	header_        http.Header
}

// Cancel: Cancels a user's subscription purchase. The subscription
// remains valid until its expiration time.
func (r *PurchasesSubscriptionsService) Cancel(packageName string, subscriptionId string, token string) *PurchasesSubscriptionsCancelCall {
	c := &PurchasesSubscriptionsCancelCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.subscriptionId = subscriptionId
	c.token = token
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesSubscriptionsCancelCall) Param(name, value string) *PurchasesSubscriptionsCancelCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesSubscriptionsCancelCall) AddScope(scope string) *PurchasesSubscriptionsCancelCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesSubscriptionsCancelCall) Delegate(d gensupport.Delegate) *PurchasesSubscriptionsCancelCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesSubscriptionsCancelCall) Fields(s ...googleapi.Field) *PurchasesSubscriptionsCancelCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesSubscriptionsCancelCall) Context(ctx context.Context) *PurchasesSubscriptionsCancelCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesSubscriptionsCancelCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesSubscriptionsCancelCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.subscriptions.cancel", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:cancel",
		PathParams: map[string]string{
			"packageName":    c.packageName,
			"subscriptionId": c.subscriptionId,
			"token":          c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.subscriptions.cancel" call.
func (c *PurchasesSubscriptionsCancelCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Cancels a user's subscription purchase. The subscription remains valid until its expiration time.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.purchases.subscriptions.cancel",
	//   "parameterOrder": [
	//     "packageName",
	//     "subscriptionId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "subscriptionId": {
	//       "description": "The purchased subscription ID (for example, 'monthly001').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the subscription was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:cancel",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.subscriptions.defer":

type PurchasesSubscriptionsDeferCall struct {
	s                                 *Service
	packageName                       string
	subscriptionId                    string
	token                             string
	subscriptionpurchasesdeferrequest *SubscriptionPurchasesDeferRequest
	urlParams_                        gensupport.URLParams
	extra_                            map[string]string
	scopes_                           []string
	delegate_                         gensupport.Delegate
	ctx_                              context.Context
	header_                           http.Header
}

// Defer: Defers a user's subscription purchase until a specified future
// expiration time.
func (r *PurchasesSubscriptionsService) Defer(packageName string, subscriptionId string, token string, subscriptionpurchasesdeferrequest *SubscriptionPurchasesDeferRequest) *PurchasesSubscriptionsDeferCall {
	c := &PurchasesSubscriptionsDeferCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.subscriptionId = subscriptionId
	c.token = token
	c.subscriptionpurchasesdeferrequest = subscriptionpurchasesdeferrequest
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesSubscriptionsDeferCall) Param(name, value string) *PurchasesSubscriptionsDeferCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesSubscriptionsDeferCall) AddScope(scope string) *PurchasesSubscriptionsDeferCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesSubscriptionsDeferCall) Delegate(d gensupport.Delegate) *PurchasesSubscriptionsDeferCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesSubscriptionsDeferCall) Fields(s ...googleapi.Field) *PurchasesSubscriptionsDeferCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesSubscriptionsDeferCall) Context(ctx context.Context) *PurchasesSubscriptionsDeferCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesSubscriptionsDeferCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesSubscriptionsDeferCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.subscriptions.defer", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:defer",
		PathParams: map[string]string{
			"packageName":    c.packageName,
			"subscriptionId": c.subscriptionId,
			"token":          c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.subscriptionpurchasesdeferrequest,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.subscriptions.defer" call.
// Exactly one of *SubscriptionPurchasesDeferResponse or error will be
// non-nil. Any non-2xx status code is an error. Response headers are in
// either *SubscriptionPurchasesDeferResponse.ServerResponse.Header or
// (if a response was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *PurchasesSubscriptionsDeferCall) Do(opts ...googleapi.CallOption) (*SubscriptionPurchasesDeferResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &SubscriptionPurchasesDeferResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Defers a user's subscription purchase until a specified future expiration time.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.purchases.subscriptions.defer",
	//   "parameterOrder": [
	//     "packageName",
	//     "subscriptionId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "subscriptionId": {
	//       "description": "The purchased subscription ID (for example, 'monthly001').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the subscription was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:defer",
	//   "request": {
	//     "$ref": "SubscriptionPurchasesDeferRequest"
	//   },
	//   "response": {
	//     "$ref": "SubscriptionPurchasesDeferResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.subscriptions.get":

type PurchasesSubscriptionsGetCall struct {
	s              *Service
	packageName    string
	subscriptionId string
	token          string
	urlParams_     gensupport.URLParams
	extra_         map[string]string
	scopes_        []string
	delegate_      gensupport.Delegate
	ctx_           context.Context
	header_        http.Header
}

// Get: Checks whether a user's subscription purchase is valid and
// returns its expiry time.
func (r *PurchasesSubscriptionsService) Get(packageName string, subscriptionId string, token string) *PurchasesSubscriptionsGetCall {
	c := &PurchasesSubscriptionsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.subscriptionId = subscriptionId
	c.token = token
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesSubscriptionsGetCall) Param(name, value string) *PurchasesSubscriptionsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesSubscriptionsGetCall) AddScope(scope string) *PurchasesSubscriptionsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesSubscriptionsGetCall) Delegate(d gensupport.Delegate) *PurchasesSubscriptionsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesSubscriptionsGetCall) Fields(s ...googleapi.Field) *PurchasesSubscriptionsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesSubscriptionsGetCall) Context(ctx context.Context) *PurchasesSubscriptionsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesSubscriptionsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesSubscriptionsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.subscriptions.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}",
		PathParams: map[string]string{
			"packageName":    c.packageName,
			"subscriptionId": c.subscriptionId,
			"token":          c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.subscriptions.get" call.
// Exactly one of *SubscriptionPurchase or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *SubscriptionPurchase.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *PurchasesSubscriptionsGetCall) Do(opts ...googleapi.CallOption) (*SubscriptionPurchase, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &SubscriptionPurchase{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Checks whether a user's subscription purchase is valid and returns its expiry time.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.purchases.subscriptions.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "subscriptionId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "subscriptionId": {
	//       "description": "The purchased subscription ID (for example, 'monthly001').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the subscription was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}",
	//   "response": {
	//     "$ref": "SubscriptionPurchase"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.subscriptions.refund":

type PurchasesSubscriptionsRefundCall struct {
	s              *Service
	packageName    string
	subscriptionId string
	token          string
	urlParams_     gensupport.URLParams
	extra_         map[string]string
	scopes_        []string
	delegate_      gensupport.Delegate
	ctx_           context.Context
	header_        http.Header
}

// Refund: Refunds a user's subscription purchase, but the subscription
// remains valid until its expiration time and it will continue to
// recur.
func (r *PurchasesSubscriptionsService) Refund(packageName string, subscriptionId string, token string) *PurchasesSubscriptionsRefundCall {
	c := &PurchasesSubscriptionsRefundCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.subscriptionId = subscriptionId
	c.token = token
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesSubscriptionsRefundCall) Param(name, value string) *PurchasesSubscriptionsRefundCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesSubscriptionsRefundCall) AddScope(scope string) *PurchasesSubscriptionsRefundCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesSubscriptionsRefundCall) Delegate(d gensupport.Delegate) *PurchasesSubscriptionsRefundCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesSubscriptionsRefundCall) Fields(s ...googleapi.Field) *PurchasesSubscriptionsRefundCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesSubscriptionsRefundCall) Context(ctx context.Context) *PurchasesSubscriptionsRefundCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesSubscriptionsRefundCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesSubscriptionsRefundCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.subscriptions.refund", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:refund",
		PathParams: map[string]string{
			"packageName":    c.packageName,
			"subscriptionId": c.subscriptionId,
			"token":          c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.subscriptions.refund" call.
func (c *PurchasesSubscriptionsRefundCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Refunds a user's subscription purchase, but the subscription remains valid until its expiration time and it will continue to recur.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.purchases.subscriptions.refund",
	//   "parameterOrder": [
	//     "packageName",
	//     "subscriptionId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "subscriptionId": {
	//       "description": "The purchased subscription ID (for example, 'monthly001').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the subscription was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:refund",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.subscriptions.revoke":

type PurchasesSubscriptionsRevokeCall struct {
	s              *Service
	packageName    string
	subscriptionId string
	token          string
	urlParams_     gensupport.URLParams
	extra_         map[string]string
	scopes_        []string
	delegate_      gensupport.Delegate
	ctx_           context.Context
	header_        http.Header
}

// Revoke: Refunds and immediately revokes a user's subscription
// purchase. Access to the subscription will be terminated immediately
// and it will stop recurring.
func (r *PurchasesSubscriptionsService) Revoke(packageName string, subscriptionId string, token string) *PurchasesSubscriptionsRevokeCall {
	c := &PurchasesSubscriptionsRevokeCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.subscriptionId = subscriptionId
	c.token = token
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesSubscriptionsRevokeCall) Param(name, value string) *PurchasesSubscriptionsRevokeCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesSubscriptionsRevokeCall) AddScope(scope string) *PurchasesSubscriptionsRevokeCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesSubscriptionsRevokeCall) Delegate(d gensupport.Delegate) *PurchasesSubscriptionsRevokeCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesSubscriptionsRevokeCall) Fields(s ...googleapi.Field) *PurchasesSubscriptionsRevokeCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesSubscriptionsRevokeCall) Context(ctx context.Context) *PurchasesSubscriptionsRevokeCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesSubscriptionsRevokeCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesSubscriptionsRevokeCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.subscriptions.revoke", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:revoke",
		PathParams: map[string]string{
			"packageName":    c.packageName,
			"subscriptionId": c.subscriptionId,
			"token":          c.token,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.subscriptions.revoke" call.
func (c *PurchasesSubscriptionsRevokeCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Refunds and immediately revokes a user's subscription purchase. Access to the subscription will be terminated immediately and it will stop recurring.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.purchases.subscriptions.revoke",
	//   "parameterOrder": [
	//     "packageName",
	//     "subscriptionId",
	//     "token"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "The package name of the application for which this subscription was purchased (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "subscriptionId": {
	//       "description": "The purchased subscription ID (for example, 'monthly001').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "The token provided to the user's device when the subscription was purchased.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/subscriptions/{subscriptionId}/tokens/{token}:revoke",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.purchases.voidedpurchases.list":

type PurchasesVoidedpurchasesListCall struct {
	s           *Service
	packageName string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists the purchases that were canceled, refunded or
// charged-back.
func (r *PurchasesVoidedpurchasesService) List(packageName string) *PurchasesVoidedpurchasesListCall {
	c := &PurchasesVoidedpurchasesListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	return c
}

// EndTime sets the optional parameter "endTime": The time, in
// milliseconds since the Epoch, of the newest voided purchase that you
// want to see in the response. The value of this parameter cannot be
// greater than the current time and is ignored if a pagination token is
// set. Default value is current time. Note: This filter is applied on
// the time at which the record is seen as voided by our systems and not
// the actual voided time returned in the response.
func (c *PurchasesVoidedpurchasesListCall) EndTime(endTime int64) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("endTime", fmt.Sprint(endTime))
	return c
}

// MaxResults sets the optional parameter "maxResults": Defines how many
// results the list operation should return. The default number depends
// on the resource collection.
func (c *PurchasesVoidedpurchasesListCall) MaxResults(maxResults int64) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("maxResults", fmt.Sprint(maxResults))
	return c
}

// StartIndex sets the optional parameter "startIndex": Defines the
// index of the first element to return. This can only be used if
// indexed paging is enabled.
func (c *PurchasesVoidedpurchasesListCall) StartIndex(startIndex int64) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("startIndex", fmt.Sprint(startIndex))
	return c
}

// StartTime sets the optional parameter "startTime": The time, in
// milliseconds since the Epoch, of the oldest voided purchase that you
// want to see in the response. The value of this parameter cannot be
// older than 30 days and is ignored if a pagination token is set.
// Default value is current time minus 30 days. Note: This filter is
// applied on the time at which the record is seen as voided by our
// systems and not the actual voided time returned in the response.
func (c *PurchasesVoidedpurchasesListCall) StartTime(startTime int64) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("startTime", fmt.Sprint(startTime))
	return c
}

// Token sets the optional parameter "token": Defines the token of the
// page to return, usually taken from TokenPagination. This can only be
// used if token paging is enabled.
func (c *PurchasesVoidedpurchasesListCall) Token(token string) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("token", token)
	return c
}

// Type sets the optional parameter "type": The type of voided purchases
// that you want to see in the response. Possible values are: 0. Only
// voided in-app product purchases will be returned in the response.
// This is the default value. 1. Both voided in-app purchases and voided
// subscription purchases will be returned in the response. Note: Before
// requesting to receive voided subscription purchases, you must switch
// to use orderId in the response which uniquely identifies one-time
// purchases and subscriptions. Otherwise, you will receive multiple
// subscription orders with the same PurchaseToken, because subscription
// renewal orders share the same PurchaseToken.
func (c *PurchasesVoidedpurchasesListCall) Type(type_ int64) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("type", fmt.Sprint(type_))
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *PurchasesVoidedpurchasesListCall) Param(name, value string) *PurchasesVoidedpurchasesListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *PurchasesVoidedpurchasesListCall) AddScope(scope string) *PurchasesVoidedpurchasesListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *PurchasesVoidedpurchasesListCall) Delegate(d gensupport.Delegate) *PurchasesVoidedpurchasesListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *PurchasesVoidedpurchasesListCall) Fields(s ...googleapi.Field) *PurchasesVoidedpurchasesListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *PurchasesVoidedpurchasesListCall) Context(ctx context.Context) *PurchasesVoidedpurchasesListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *PurchasesVoidedpurchasesListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *PurchasesVoidedpurchasesListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.purchases.voidedpurchases.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/purchases/voidedpurchases",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Reserved: []string{"endTime", "maxResults", "startIndex", "startTime", "token", "type"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.purchases.voidedpurchases.list" call.
// Exactly one of *VoidedPurchasesListResponse or error will be non-nil.
// Any non-2xx status code is an error. Response headers are in either
// *VoidedPurchasesListResponse.ServerResponse.Header or (if a response
// was returned at all) in
// error.(*gensupport.BadRequestError).Err.Header.
func (c *PurchasesVoidedpurchasesListCall) Do(opts ...googleapi.CallOption) (*VoidedPurchasesListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &VoidedPurchasesListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists the purchases that were canceled, refunded or charged-back.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.purchases.voidedpurchases.list",
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "endTime": {
	//       "description": "The time, in milliseconds since the Epoch, of the newest voided purchase that you want to see in the response. The value of this parameter cannot be greater than the current time and is ignored if a pagination token is set. Default value is current time. Note: This filter is applied on the time at which the record is seen as voided by our systems and not the actual voided time returned in the response.",
	//       "format": "int64",
	//       "location": "query",
	//       "type": "string"
	//     },
	//     "maxResults": {
	//       "description": "Defines how many results the list operation should return. The default number depends on the resource collection.",
	//       "format": "uint32",
	//       "location": "query",
	//       "type": "integer"
	//     },
	//     "packageName": {
	//       "description": "The package name of the application for which voided purchases need to be returned (for example, 'com.some.thing').",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "startIndex": {
	//       "description": "Defines the index of the first element to return. This can only be used if indexed paging is enabled.",
	//       "format": "uint32",
	//       "location": "query",
	//       "type": "integer"
	//     },
	//     "startTime": {
	//       "description": "The time, in milliseconds since the Epoch, of the oldest voided purchase that you want to see in the response. The value of this parameter cannot be older than 30 days and is ignored if a pagination token is set. Default value is current time minus 30 days. Note: This filter is applied on the time at which the record is seen as voided by our systems and not the actual voided time returned in the response.",
	//       "format": "int64",
	//       "location": "query",
	//       "type": "string"
	//     },
	//     "token": {
	//       "description": "Defines the token of the page to return, usually taken from TokenPagination. This can only be used if token paging is enabled.",
	//       "location": "query",
	//       "type": "string"
	//     },
	//     "type": {
	//       "description": "The type of voided purchases that you want to see in the response. Possible values are: 0. Only voided in-app product purchases will be returned in the response. This is the default value. 1. Both voided in-app purchases and voided subscription purchases will be returned in the response. Note: Before requesting to receive voided subscription purchases, you must switch to use orderId in the response which uniquely identifies one-time purchases and subscriptions. Otherwise, you will receive multiple subscription orders with the same PurchaseToken, because subscription renewal orders share the same PurchaseToken.",
	//       "format": "int32",
	//       "location": "query",
	//       "type": "integer"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/purchases/voidedpurchases",
	//   "response": {
	//     "$ref": "VoidedPurchasesListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *PurchasesVoidedpurchasesListCall) Pages(ctx context.Context, f func(*VoidedPurchasesListResponse) error) error {
	c.ctx_ = ctx
	// reset paging to original point
	if c.urlParams_.Has("token") {
		defer c.Token(c.urlParams_.Get("token"))
	} else {
		defer c.urlParams_.Del("token")
	}
	for {
		x, err := c.Do()
		if err != nil {
			return err
		}
		if err := f(x); err != nil {
			return err
		}
		if x.TokenPagination == nil || x.TokenPagination.NextPageToken == "" {
			return nil
		}
		c.Token(x.TokenPagination.NextPageToken)
	}
}

// method id "androidpublisher.reviews.get":

type ReviewsGetCall struct {
	s           *Service
	packageName string
	reviewId    string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Gets a single review.
func (r *ReviewsService) Get(packageName string, reviewId string) *ReviewsGetCall {
	c := &ReviewsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.reviewId = reviewId
	return c
}

// TranslationLanguage sets the optional parameter
// "translationLanguage": Language localization code.
func (c *ReviewsGetCall) TranslationLanguage(translationLanguage string) *ReviewsGetCall {
	c.urlParams_.Set("translationLanguage", translationLanguage)
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *ReviewsGetCall) Param(name, value string) *ReviewsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *ReviewsGetCall) AddScope(scope string) *ReviewsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *ReviewsGetCall) Delegate(d gensupport.Delegate) *ReviewsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *ReviewsGetCall) Fields(s ...googleapi.Field) *ReviewsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *ReviewsGetCall) Context(ctx context.Context) *ReviewsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *ReviewsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *ReviewsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.reviews.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/reviews/{reviewId}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"reviewId":    c.reviewId,
		},
		Reserved: []string{"translationLanguage"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.reviews.get" call.
// Exactly one of *Review or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Review.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *ReviewsGetCall) Do(opts ...googleapi.CallOption) (*Review, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Review{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Gets a single review.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.reviews.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "reviewId"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "reviewId": {
	//       "description": "Unique identifier for a review.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "translationLanguage": {
	//       "description": "Language localization code.",
	//       "location": "query",
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/reviews/{reviewId}",
	//   "response": {
	//     "$ref": "Review"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.reviews.list":

type ReviewsListCall struct {
	s           *Service
	packageName string
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Lists all reviews.
func (r *ReviewsService) List(packageName string) *ReviewsListCall {
	c := &ReviewsListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	return c
}

// MaxResults sets the optional parameter "maxResults": How many results
// the list operation should return.
func (c *ReviewsListCall) MaxResults(maxResults int64) *ReviewsListCall {
	c.urlParams_.Set("maxResults", fmt.Sprint(maxResults))
	return c
}

// StartIndex sets the optional parameter "startIndex": The index of the
// first element to return.
func (c *ReviewsListCall) StartIndex(startIndex int64) *ReviewsListCall {
	c.urlParams_.Set("startIndex", fmt.Sprint(startIndex))
	return c
}

// Token sets the optional parameter "token": Pagination token. If
// empty, list starts at the first review.
func (c *ReviewsListCall) Token(token string) *ReviewsListCall {
	c.urlParams_.Set("token", token)
	return c
}

// TranslationLanguage sets the optional parameter
// "translationLanguage": Language localization code.
func (c *ReviewsListCall) TranslationLanguage(translationLanguage string) *ReviewsListCall {
	c.urlParams_.Set("translationLanguage", translationLanguage)
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *ReviewsListCall) Param(name, value string) *ReviewsListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *ReviewsListCall) AddScope(scope string) *ReviewsListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *ReviewsListCall) Delegate(d gensupport.Delegate) *ReviewsListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *ReviewsListCall) Fields(s ...googleapi.Field) *ReviewsListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *ReviewsListCall) Context(ctx context.Context) *ReviewsListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *ReviewsListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *ReviewsListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.reviews.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/reviews",
		PathParams: map[string]string{
			"packageName": c.packageName,
		},
		Reserved: []string{"maxResults", "startIndex", "token", "translationLanguage"},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.reviews.list" call.
// Exactly one of *ReviewsListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ReviewsListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *ReviewsListCall) Do(opts ...googleapi.CallOption) (*ReviewsListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ReviewsListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Lists all reviews.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.reviews.list",
	//   "parameterOrder": [
	//     "packageName"
	//   ],
	//   "parameters": {
	//     "maxResults": {
	//       "description": "How many results the list operation should return.",
	//       "format": "uint32",
	//       "location": "query",
	//       "type": "integer"
	//     },
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "startIndex": {
	//       "description": "The index of the first element to return.",
	//       "format": "uint32",
	//       "location": "query",
	//       "type": "integer"
	//     },
	//     "token": {
	//       "description": "Pagination token. If empty, list starts at the first review.",
	//       "location": "query",
	//       "type": "string"
	//     },
	//     "translationLanguage": {
	//       "description": "Language localization code.",
	//       "location": "query",
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/reviews",
	//   "response": {
	//     "$ref": "ReviewsListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ReviewsListCall) Pages(ctx context.Context, f func(*ReviewsListResponse) error) error {
	c.ctx_ = ctx
	// reset paging to original point
	if c.urlParams_.Has("token") {
		defer c.Token(c.urlParams_.Get("token"))
	} else {
		defer c.urlParams_.Del("token")
	}
	for {
		x, err := c.Do()
		if err != nil {
			return err
		}
		if err := f(x); err != nil {
			return err
		}
		if x.TokenPagination == nil || x.TokenPagination.NextPageToken == "" {
			return nil
		}
		c.Token(x.TokenPagination.NextPageToken)
	}
}

// method id "androidpublisher.reviews.reply":

type ReviewsReplyCall struct {
	s                   *Service
	packageName         string
	reviewId            string
	reviewsreplyrequest *ReviewsReplyRequest
	urlParams_          gensupport.URLParams
	extra_              map[string]string
	scopes_             []string
	delegate_           gensupport.Delegate
	ctx_                context.Context
	header_             http.Header
}

// Reply: Replies to a single review, or updates an existing reply.
func (r *ReviewsService) Reply(packageName string, reviewId string, reviewsreplyrequest *ReviewsReplyRequest) *ReviewsReplyCall {
	c := &ReviewsReplyCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.reviewId = reviewId
	c.reviewsreplyrequest = reviewsreplyrequest
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *ReviewsReplyCall) Param(name, value string) *ReviewsReplyCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *ReviewsReplyCall) AddScope(scope string) *ReviewsReplyCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *ReviewsReplyCall) Delegate(d gensupport.Delegate) *ReviewsReplyCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *ReviewsReplyCall) Fields(s ...googleapi.Field) *ReviewsReplyCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *ReviewsReplyCall) Context(ctx context.Context) *ReviewsReplyCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *ReviewsReplyCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *ReviewsReplyCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.reviews.reply", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/reviews/{reviewId}:reply",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"reviewId":    c.reviewId,
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.reviewsreplyrequest,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.reviews.reply" call.
// Exactly one of *ReviewsReplyResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *ReviewsReplyResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *ReviewsReplyCall) Do(opts ...googleapi.CallOption) (*ReviewsReplyResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &ReviewsReplyResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Replies to a single review, or updates an existing reply.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.reviews.reply",
	//   "parameterOrder": [
	//     "packageName",
	//     "reviewId"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "reviewId": {
	//       "description": "Unique identifier for a review.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/reviews/{reviewId}:reply",
	//   "request": {
	//     "$ref": "ReviewsReplyRequest"
	//   },
	//   "response": {
	//     "$ref": "ReviewsReplyResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.systemapks.variants.create":

type SystemapksVariantsCreateCall struct {
	s           *Service
	packageName string
	versionCode int64
	variant     *Variant
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Create: Creates an APK which is suitable for inclusion in a system
// image from an already uploaded Android App Bundle.
func (r *SystemapksVariantsService) Create(packageName string, versionCode int64, variant *Variant) *SystemapksVariantsCreateCall {
	c := &SystemapksVariantsCreateCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.versionCode = versionCode
	c.variant = variant
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *SystemapksVariantsCreateCall) Param(name, value string) *SystemapksVariantsCreateCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *SystemapksVariantsCreateCall) AddScope(scope string) *SystemapksVariantsCreateCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *SystemapksVariantsCreateCall) Delegate(d gensupport.Delegate) *SystemapksVariantsCreateCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *SystemapksVariantsCreateCall) Fields(s ...googleapi.Field) *SystemapksVariantsCreateCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *SystemapksVariantsCreateCall) Context(ctx context.Context) *SystemapksVariantsCreateCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *SystemapksVariantsCreateCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *SystemapksVariantsCreateCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.systemapks.variants.create", HTTPMethod: "POST"},
		Path:   "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"versionCode": fmt.Sprint(c.versionCode),
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Body:     c.variant,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.systemapks.variants.create" call.
// Exactly one of *Variant or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Variant.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *SystemapksVariantsCreateCall) Do(opts ...googleapi.CallOption) (*Variant, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Variant{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Creates an APK which is suitable for inclusion in a system image from an already uploaded Android App Bundle.",
	//   "httpMethod": "POST",
	//   "id": "androidpublisher.systemapks.variants.create",
	//   "parameterOrder": [
	//     "packageName",
	//     "versionCode"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "versionCode": {
	//       "description": "The version code of the App Bundle.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants",
	//   "request": {
	//     "$ref": "Variant"
	//   },
	//   "response": {
	//     "$ref": "Variant"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.systemapks.variants.download":

type SystemapksVariantsDownloadCall struct {
	s           *Service
	packageName string
	versionCode int64
	variantId   int64
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Download: Downloads a previously created system APK which is suitable
// for inclusion in a system image.
func (r *SystemapksVariantsService) Download(packageName string, versionCode int64, variantId int64) *SystemapksVariantsDownloadCall {
	c := &SystemapksVariantsDownloadCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.versionCode = versionCode
	c.variantId = variantId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *SystemapksVariantsDownloadCall) Param(name, value string) *SystemapksVariantsDownloadCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *SystemapksVariantsDownloadCall) AddScope(scope string) *SystemapksVariantsDownloadCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *SystemapksVariantsDownloadCall) Delegate(d gensupport.Delegate) *SystemapksVariantsDownloadCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *SystemapksVariantsDownloadCall) Fields(s ...googleapi.Field) *SystemapksVariantsDownloadCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *SystemapksVariantsDownloadCall) Context(ctx context.Context) *SystemapksVariantsDownloadCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *SystemapksVariantsDownloadCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *SystemapksVariantsDownloadCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.systemapks.variants.download", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants/{variantId}:download",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"versionCode": fmt.Sprint(c.versionCode),
			"variantId":   fmt.Sprint(c.variantId),
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
		Raw:      alt == "media",
	})
}

// Download fetches the API endpoint's "media" value, instead of the normal
// API response value. If the returned error is nil, the Response is guaranteed to
// have a 2xx status code. Callers must close the Response.Body as usual.
func (c *SystemapksVariantsDownloadCall) Download(opts ...googleapi.CallOption) (*http.Response, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	return c.doRequest("media", nil)
}

// Do executes the "androidpublisher.systemapks.variants.download" call.
func (c *SystemapksVariantsDownloadCall) Do(opts ...googleapi.CallOption) error {
	gensupport.SetOptions(c.urlParams_, opts...)
	_, err := c.doRequest("json", nil)
	return err
	// {
	//   "description": "Downloads a previously created system APK which is suitable for inclusion in a system image.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.systemapks.variants.download",
	//   "parameterOrder": [
	//     "packageName",
	//     "versionCode",
	//     "variantId"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "variantId": {
	//       "description": "The ID of a previously created system APK variant.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "versionCode": {
	//       "description": "The version code of the App Bundle.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants/{variantId}:download",
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ],
	//   "supportsMediaDownload": true,
	//   "useMediaDownloadService": true
	// }
}

// method id "androidpublisher.systemapks.variants.get":

type SystemapksVariantsGetCall struct {
	s           *Service
	packageName string
	versionCode int64
	variantId   int64
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// Get: Returns a previously created system APK variant.
func (r *SystemapksVariantsService) Get(packageName string, versionCode int64, variantId int64) *SystemapksVariantsGetCall {
	c := &SystemapksVariantsGetCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.versionCode = versionCode
	c.variantId = variantId
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *SystemapksVariantsGetCall) Param(name, value string) *SystemapksVariantsGetCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *SystemapksVariantsGetCall) AddScope(scope string) *SystemapksVariantsGetCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *SystemapksVariantsGetCall) Delegate(d gensupport.Delegate) *SystemapksVariantsGetCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *SystemapksVariantsGetCall) Fields(s ...googleapi.Field) *SystemapksVariantsGetCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *SystemapksVariantsGetCall) Context(ctx context.Context) *SystemapksVariantsGetCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *SystemapksVariantsGetCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *SystemapksVariantsGetCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.systemapks.variants.get", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants/{variantId}",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"versionCode": fmt.Sprint(c.versionCode),
			"variantId":   fmt.Sprint(c.variantId),
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.systemapks.variants.get" call.
// Exactly one of *Variant or error will be non-nil. Any non-2xx status
// code is an error. Response headers are in either
// *Variant.ServerResponse.Header or (if a response was returned at all)
// in error.(*gensupport.BadRequestError).Err.Header.
func (c *SystemapksVariantsGetCall) Do(opts ...googleapi.CallOption) (*Variant, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &Variant{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Returns a previously created system APK variant.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.systemapks.variants.get",
	//   "parameterOrder": [
	//     "packageName",
	//     "versionCode",
	//     "variantId"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "variantId": {
	//       "description": "The ID of a previously created system APK variant.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     },
	//     "versionCode": {
	//       "description": "The version code of the App Bundle.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants/{variantId}",
	//   "response": {
	//     "$ref": "Variant"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}

// method id "androidpublisher.systemapks.variants.list":

type SystemapksVariantsListCall struct {
	s           *Service
	packageName string
	versionCode int64
	urlParams_  gensupport.URLParams
	extra_      map[string]string
	scopes_     []string
	delegate_   gensupport.Delegate
	ctx_        context.Context
	header_     http.Header
}

// List: Returns the list of previously created system APK variants.
func (r *SystemapksVariantsService) List(packageName string, versionCode int64) *SystemapksVariantsListCall {
	c := &SystemapksVariantsListCall{s: r.s, urlParams_: make(gensupport.URLParams)}
	c.packageName = packageName
	c.versionCode = versionCode
	return c
}

// Param sets an additional query parameter. Setting a parameter the call
// already defines fails the call with a *gensupport.FieldClashError.
func (c *SystemapksVariantsListCall) Param(name, value string) *SystemapksVariantsListCall {
	if c.extra_ == nil {
		c.extra_ = make(map[string]string)
	}
	c.extra_[name] = value
	return c
}

// AddScope adds a scope to request the access token for. Without any, the
// call uses AndroidpublisherScope.
func (c *SystemapksVariantsListCall) AddScope(scope string) *SystemapksVariantsListCall {
	c.scopes_ = append(c.scopes_, scope)
	return c
}

// Delegate sets the delegate observing this call, replacing the service's.
func (c *SystemapksVariantsListCall) Delegate(d gensupport.Delegate) *SystemapksVariantsListCall {
	c.delegate_ = d
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse
// for more information.
func (c *SystemapksVariantsListCall) Fields(s ...googleapi.Field) *SystemapksVariantsListCall {
	c.urlParams_.Set("fields", googleapi.CombineFields(s))
	return c
}

// Context sets the context to be used in this call's Do method. Any
// pending HTTP request will be aborted if the provided context is
// canceled.
func (c *SystemapksVariantsListCall) Context(ctx context.Context) *SystemapksVariantsListCall {
	c.ctx_ = ctx
	return c
}

// Header returns an http.Header that can be modified by the caller to
// add HTTP headers to the request.
func (c *SystemapksVariantsListCall) Header() http.Header {
	if c.header_ == nil {
		c.header_ = make(http.Header)
	}
	return c.header_
}

func (c *SystemapksVariantsListCall) doRequest(alt string, result any) (*http.Response, error) {
	return c.s.send(c.ctx_, &gensupport.Request{
		Method: gensupport.MethodInfo{ID: "androidpublisher.systemapks.variants.list", HTTPMethod: "GET"},
		Path:   "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants",
		PathParams: map[string]string{
			"packageName": c.packageName,
			"versionCode": fmt.Sprint(c.versionCode),
		},
		Params:   c.urlParams_,
		Extra:    c.extra_,
		Alt:      alt,
		Header:   c.header_,
		Scopes:   c.scopes_,
		Delegate: c.delegate_,
		Result:   result,
	})
}

// Do executes the "androidpublisher.systemapks.variants.list" call.
// Exactly one of *SystemApksListResponse or error will be non-nil. Any
// non-2xx status code is an error. Response headers are in either
// *SystemApksListResponse.ServerResponse.Header or (if a response was
// returned at all) in error.(*gensupport.BadRequestError).Err.Header.
func (c *SystemapksVariantsListCall) Do(opts ...googleapi.CallOption) (*SystemApksListResponse, error) {
	gensupport.SetOptions(c.urlParams_, opts...)
	ret := &SystemApksListResponse{}
	res, err := c.doRequest("json", ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
	return ret, nil
	// {
	//   "description": "Returns the list of previously created system APK variants.",
	//   "httpMethod": "GET",
	//   "id": "androidpublisher.systemapks.variants.list",
	//   "parameterOrder": [
	//     "packageName",
	//     "versionCode"
	//   ],
	//   "parameters": {
	//     "packageName": {
	//       "description": "Package name of the app.",
	//       "location": "path",
	//       "required": true,
	//       "type": "string"
	//     },
	//     "versionCode": {
	//       "description": "The version code of the App Bundle.",
	//       "format": "int32",
	//       "location": "path",
	//       "required": true,
	//       "type": "integer"
	//     }
	//   },
	//   "path": "androidpublisher/v3/applications/{packageName}/systemApks/{versionCode}/variants",
	//   "response": {
	//     "$ref": "SystemApksListResponse"
	//   },
	//   "scopes": [
	//     "https://www.googleapis.com/auth/androidpublisher"
	//   ]
	// }
}
