package camtparser

import "encoding/xml"

// The types below mirror the bank-to-customer statement schema. Optional
// elements are pointers or omitempty strings; mapping onto the canonical
// model lives in project.go and build.go.

// Document is the root element.
type Document struct {
	XMLName       xml.Name      `xml:"Document"`
	Xmlns         string        `xml:"xmlns,attr,omitempty"`
	BkToCstmrStmt BkToCstmrStmt `xml:"BkToCstmrStmt"`
}

type BkToCstmrStmt struct {
	GrpHdr GroupHeader `xml:"GrpHdr"`
	Stmt   []Stmt      `xml:"Stmt"`
}

type GroupHeader struct {
	MsgId   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

type Stmt struct {
	Id           string          `xml:"Id"`
	ElctrncSeqNb string          `xml:"ElctrncSeqNb,omitempty"`
	CreDtTm      string          `xml:"CreDtTm,omitempty"`
	FrToDt       *DateTimePeriod `xml:"FrToDt"`
	Acct         CashAccount     `xml:"Acct"`
	Bal          []CashBalance   `xml:"Bal"`
	Ntry         []ReportEntry   `xml:"Ntry"`
}

type DateTimePeriod struct {
	FrDtTm string `xml:"FrDtTm,omitempty"`
	ToDtTm string `xml:"ToDtTm,omitempty"`
}

type CashAccount struct {
	Id   AccountIdentification `xml:"Id"`
	Ccy  string                `xml:"Ccy,omitempty"`
	Nm   string                `xml:"Nm,omitempty"`
	Ownr *PartyIdentification  `xml:"Ownr"`
}

type AccountIdentification struct {
	IBAN string                        `xml:"IBAN,omitempty"`
	Othr *GenericAccountIdentification `xml:"Othr"`
}

type GenericAccountIdentification struct {
	Id string `xml:"Id"`
}

type CashBalance struct {
	Tp        BalanceTypeChoice      `xml:"Tp"`
	Amt       Amount                 `xml:"Amt"`
	CdtDbtInd string                 `xml:"CdtDbtInd"`
	Dt        *DateAndDateTimeChoice `xml:"Dt"`
}

type BalanceTypeChoice struct {
	CdOrPrtry CodeOrProprietary `xml:"CdOrPrtry"`
}

type CodeOrProprietary struct {
	Cd    string `xml:"Cd,omitempty"`
	Prtry string `xml:"Prtry,omitempty"`
}

// Amount is a decimal with its currency attribute.
type Amount struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr,omitempty"`
}

type DateAndDateTimeChoice struct {
	Dt   string `xml:"Dt,omitempty"`
	DtTm string `xml:"DtTm,omitempty"`
}

type ReportEntry struct {
	NtryRef      string                 `xml:"NtryRef,omitempty"`
	Amt          Amount                 `xml:"Amt"`
	CdtDbtInd    string                 `xml:"CdtDbtInd"`
	Sts          string                 `xml:"Sts,omitempty"`
	BookgDt      *DateAndDateTimeChoice `xml:"BookgDt"`
	ValDt        *DateAndDateTimeChoice `xml:"ValDt"`
	AcctSvcrRef  string                 `xml:"AcctSvcrRef,omitempty"`
	BkTxCd       *BankTransactionCode   `xml:"BkTxCd"`
	NtryDtls     *EntryDetails          `xml:"NtryDtls"`
	AddtlNtryInf string                 `xml:"AddtlNtryInf,omitempty"`
}

type BankTransactionCode struct {
	Domn  *BankTransactionDomain `xml:"Domn"`
	Prtry *ProprietaryCode       `xml:"Prtry"`
}

type BankTransactionDomain struct {
	Cd   string                `xml:"Cd"`
	Fmly BankTransactionFamily `xml:"Fmly"`
}

type BankTransactionFamily struct {
	Cd        string `xml:"Cd"`
	SubFmlyCd string `xml:"SubFmlyCd"`
}

type ProprietaryCode struct {
	Cd   string `xml:"Cd"`
	Issr string `xml:"Issr,omitempty"`
}

type EntryDetails struct {
	TxDtls []TransactionDetails `xml:"TxDtls"`
}

type TransactionDetails struct {
	Refs       *TransactionReferences `xml:"Refs"`
	RltdPties  *RelatedParties        `xml:"RltdPties"`
	RltdAgts   *RelatedAgents         `xml:"RltdAgts"`
	RmtInf     *RemittanceInformation `xml:"RmtInf"`
	AddtlTxInf string                 `xml:"AddtlTxInf,omitempty"`
}

type TransactionReferences struct {
	AcctSvcrRef string `xml:"AcctSvcrRef,omitempty"`
	EndToEndId  string `xml:"EndToEndId,omitempty"`
	TxId        string `xml:"TxId,omitempty"`
}

type RelatedParties struct {
	Dbtr     *PartyIdentification `xml:"Dbtr"`
	DbtrAcct *AccountReference    `xml:"DbtrAcct"`
	Cdtr     *PartyIdentification `xml:"Cdtr"`
	CdtrAcct *AccountReference    `xml:"CdtrAcct"`
}

type PartyIdentification struct {
	Nm string `xml:"Nm,omitempty"`
}

type AccountReference struct {
	Id AccountIdentification `xml:"Id"`
}

type RelatedAgents struct {
	DbtrAgt *FinancialInstitution `xml:"DbtrAgt"`
	CdtrAgt *FinancialInstitution `xml:"CdtrAgt"`
}

type FinancialInstitution struct {
	FinInstnId FinancialInstitutionIdentification `xml:"FinInstnId"`
}

// FinancialInstitutionIdentification carries BIC (camt.053.001.02) or BICFI
// (later versions).
type FinancialInstitutionIdentification struct {
	BIC   string `xml:"BIC,omitempty"`
	BICFI string `xml:"BICFI,omitempty"`
}

type RemittanceInformation struct {
	Ustrd []string `xml:"Ustrd"`
}
