// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package androidpublisher

import "fmt"

// The API reports these states as bare integers. An absent value decodes as
// the zero value. PurchaseType and PaymentState are pointers in the schemas
// carrying them, their zero values being meaningful.

// PurchaseState is the purchase state of an in-app product order.
type PurchaseState int64

const (
	PurchaseStatePurchased PurchaseState = 0
	PurchaseStateCanceled  PurchaseState = 1
	PurchaseStatePending   PurchaseState = 2
)

func (v PurchaseState) String() string {
	switch v {
	case PurchaseStatePurchased:
		return "purchased"
	case PurchaseStateCanceled:
		return "canceled"
	case PurchaseStatePending:
		return "pending"
	default:
		return fmt.Sprintf("PurchaseState(%d)", int64(v))
	}
}

// ConsumptionState tells whether an in-app product was consumed.
type ConsumptionState int64

const (
	ConsumptionStateYetToBeConsumed ConsumptionState = 0
	ConsumptionStateConsumed        ConsumptionState = 1
)

func (v ConsumptionState) String() string {
	switch v {
	case ConsumptionStateYetToBeConsumed:
		return "yet to be consumed"
	case ConsumptionStateConsumed:
		return "consumed"
	default:
		return fmt.Sprintf("ConsumptionState(%d)", int64(v))
	}
}

// AcknowledgementState tells whether a purchase was acknowledged.
type AcknowledgementState int64

const (
	AcknowledgementStateYetToBeAcknowledged AcknowledgementState = 0
	AcknowledgementStateAcknowledged        AcknowledgementState = 1
)

func (v AcknowledgementState) String() string {
	switch v {
	case AcknowledgementStateYetToBeAcknowledged:
		return "yet to be acknowledged"
	case AcknowledgementStateAcknowledged:
		return "acknowledged"
	default:
		return fmt.Sprintf("AcknowledgementState(%d)", int64(v))
	}
}

// PurchaseType is set on purchases that did not go through the standard in-app billing flow.
type PurchaseType int64

const (
	PurchaseTypeTest     PurchaseType = 0
	PurchaseTypePromo    PurchaseType = 1
	PurchaseTypeRewarded PurchaseType = 2
)

func (v PurchaseType) String() string {
	switch v {
	case PurchaseTypeTest:
		return "test"
	case PurchaseTypePromo:
		return "promo"
	case PurchaseTypeRewarded:
		return "rewarded"
	default:
		return fmt.Sprintf("PurchaseType(%d)", int64(v))
	}
}

// PaymentState is the payment state of a subscription.
type PaymentState int64

const (
	PaymentStatePending                         PaymentState = 0
	PaymentStateReceived                        PaymentState = 1
	PaymentStateFreeTrial                       PaymentState = 2
	PaymentStatePendingDeferredUpgradeDowngrade PaymentState = 3
)

func (v PaymentState) String() string {
	switch v {
	case PaymentStatePending:
		return "pending"
	case PaymentStateReceived:
		return "received"
	case PaymentStateFreeTrial:
		return "free trial"
	case PaymentStatePendingDeferredUpgradeDowngrade:
		return "pending deferred upgrade/downgrade"
	default:
		return fmt.Sprintf("PaymentState(%d)", int64(v))
	}
}

// CancelReason tells why a subscription was canceled or is not auto-renewing.
type CancelReason int64

const (
	CancelReasonUserCanceled              CancelReason = 0
	CancelReasonSystemCanceled            CancelReason = 1
	CancelReasonReplacedByNewSubscription CancelReason = 2
	CancelReasonDeveloperCanceled         CancelReason = 3
)

func (v CancelReason) String() string {
	switch v {
	case CancelReasonUserCanceled:
		return "user canceled"
	case CancelReasonSystemCanceled:
		return "system canceled"
	case CancelReasonReplacedByNewSubscription:
		return "replaced by new subscription"
	case CancelReasonDeveloperCanceled:
		return "developer canceled"
	default:
		return fmt.Sprintf("CancelReason(%d)", int64(v))
	}
}

// CancelSurveyReason is the reason a user picked in the cancellation survey.
type CancelSurveyReason int64

const (
	CancelSurveyReasonOther           CancelSurveyReason = 0
	CancelSurveyReasonNotEnoughUse    CancelSurveyReason = 1
	CancelSurveyReasonTechnicalIssues CancelSurveyReason = 2
	CancelSurveyReasonCostRelated     CancelSurveyReason = 3
	CancelSurveyReasonFoundBetterApp  CancelSurveyReason = 4
)

func (v CancelSurveyReason) String() string {
	switch v {
	case CancelSurveyReasonOther:
		return "other"
	case CancelSurveyReasonNotEnoughUse:
		return "not enough use"
	case CancelSurveyReasonTechnicalIssues:
		return "technical issues"
	case CancelSurveyReasonCostRelated:
		return "cost related"
	case CancelSurveyReasonFoundBetterApp:
		return "found better app"
	default:
		return fmt.Sprintf("CancelSurveyReason(%d)", int64(v))
	}
}

// PriceChangeState is the state of a subscription price change.
type PriceChangeState int64

const (
	PriceChangeStateOutstanding PriceChangeState = 0
	PriceChangeStateAccepted    PriceChangeState = 1
)

func (v PriceChangeState) String() string {
	switch v {
	case PriceChangeStateOutstanding:
		return "outstanding"
	case PriceChangeStateAccepted:
		return "accepted"
	default:
		return fmt.Sprintf("PriceChangeState(%d)", int64(v))
	}
}

// PromotionType is the type of promotion applied to a subscription.
type PromotionType int64

const (
	PromotionTypeOneTimeCode PromotionType = 0
	PromotionTypeVanityCode  PromotionType = 1
)

func (v PromotionType) String() string {
	switch v {
	case PromotionTypeOneTimeCode:
		return "one time code"
	case PromotionTypeVanityCode:
		return "vanity code"
	default:
		return fmt.Sprintf("PromotionType(%d)", int64(v))
	}
}

// VoidedSource is who initiated the voiding of a purchase.
type VoidedSource int64

const (
	VoidedSourceUser      VoidedSource = 0
	VoidedSourceDeveloper VoidedSource = 1
	VoidedSourceGoogle    VoidedSource = 2
)

func (v VoidedSource) String() string {
	switch v {
	case VoidedSourceUser:
		return "user"
	case VoidedSourceDeveloper:
		return "developer"
	case VoidedSourceGoogle:
		return "google"
	default:
		return fmt.Sprintf("VoidedSource(%d)", int64(v))
	}
}

// VoidedReason tells why a purchase was voided.
type VoidedReason int64

const (
	VoidedReasonOther              VoidedReason = 0
	VoidedReasonRemorse            VoidedReason = 1
	VoidedReasonNotReceived        VoidedReason = 2
	VoidedReasonDefective          VoidedReason = 3
	VoidedReasonAccidentalPurchase VoidedReason = 4
	VoidedReasonFraud              VoidedReason = 5
	VoidedReasonFriendlyFraud      VoidedReason = 6
	VoidedReasonChargeback         VoidedReason = 7
)

func (v VoidedReason) String() string {
	switch v {
	case VoidedReasonOther:
		return "other"
	case VoidedReasonRemorse:
		return "remorse"
	case VoidedReasonNotReceived:
		return "not received"
	case VoidedReasonDefective:
		return "defective"
	case VoidedReasonAccidentalPurchase:
		return "accidental purchase"
	case VoidedReasonFraud:
		return "fraud"
	case VoidedReasonFriendlyFraud:
		return "friendly fraud"
	case VoidedReasonChargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("VoidedReason(%d)", int64(v))
	}
}
