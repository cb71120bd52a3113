package ubl_test

// Fixtures UBL para las pruebas del paquete. Estructura mínima pero fiel a
// las facturas DIAN reales: namespaces cac/cbc, TaxTotal global y TaxTotal
// por línea con las mismas etiquetas.

const sampleInvoiceXML = `<?xml version="1.0" encoding="UTF-8"?>
<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
    xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
    xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>SETP990012345</cbc:ID>
  <cbc:UUID>e5cd236688df3590b14e0596ad24c5dbf421e01e</cbc:UUID>
  <cbc:IssueDate>2024-01-15</cbc:IssueDate>
  <cbc:DueDate>2024-03-15</cbc:DueDate>
  <cbc:DocumentCurrencyCode>COP</cbc:DocumentCurrencyCode>
  <cac:AccountingSupplierParty>
    <cac:Party>
      <cac:PartyName><cbc:Name>PROVEEDOR XYZ LTDA</cbc:Name></cac:PartyName>
      <cac:PartyTaxScheme><cbc:CompanyID>900.123.456-1</cbc:CompanyID></cac:PartyTaxScheme>
    </cac:Party>
  </cac:AccountingSupplierParty>
  <cac:AccountingCustomerParty>
    <cac:Party>
      <cac:PartyName><cbc:Name>EMPRESA ABC S.A.</cbc:Name></cac:PartyName>
      <cac:PartyTaxScheme><cbc:CompanyID>800987654-2</cbc:CompanyID></cac:PartyTaxScheme>
      <cac:PhysicalLocation>
        <cac:Address>
          <cac:AddressLine><cbc:Line>CL 72 # 10-34, Bogotá</cbc:Line></cac:AddressLine>
        </cac:Address>
      </cac:PhysicalLocation>
    </cac:Party>
  </cac:AccountingCustomerParty>
  <cac:PaymentMeans>
    <cbc:PaymentDueDate>2024-02-15</cbc:PaymentDueDate>
  </cac:PaymentMeans>
  <cac:TaxTotal>
    <cbc:TaxAmount currencyID="COP">19000.00</cbc:TaxAmount>
    <cac:TaxSubtotal>
      <cbc:TaxableAmount currencyID="COP">100000.00</cbc:TaxableAmount>
      <cbc:TaxAmount currencyID="COP">19000.00</cbc:TaxAmount>
      <cac:TaxCategory>
        <cbc:Percent>19.00</cbc:Percent>
        <cac:TaxScheme>
          <cbc:ID>01</cbc:ID>
          <cbc:Name>IVA</cbc:Name>
        </cac:TaxScheme>
      </cac:TaxCategory>
    </cac:TaxSubtotal>
  </cac:TaxTotal>
  <cac:LegalMonetaryTotal>
    <cbc:PayableAmount currencyID="COP">119000.00</cbc:PayableAmount>
  </cac:LegalMonetaryTotal>
  <cac:InvoiceLine>
    <cbc:ID>1</cbc:ID>
    <cac:TaxTotal>
      <cbc:TaxAmount currencyID="COP">19000.00</cbc:TaxAmount>
      <cac:TaxSubtotal>
        <cbc:TaxableAmount currencyID="COP">100000.00</cbc:TaxableAmount>
        <cbc:TaxAmount currencyID="COP">19000.00</cbc:TaxAmount>
        <cac:TaxCategory>
          <cbc:Percent>19.00</cbc:Percent>
          <cac:TaxScheme><cbc:ID>01</cbc:ID><cbc:Name>IVA</cbc:Name></cac:TaxScheme>
        </cac:TaxCategory>
      </cac:TaxSubtotal>
    </cac:TaxTotal>
  </cac:InvoiceLine>
</Invoice>`

// sampleAttachedDocumentXML envoltorio de empaquetado de firma: la factura
// real viaja como texto CDATA dentro de cac:Attachment.
const sampleAttachedDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<AttachedDocument xmlns="urn:oasis:names:specification:ubl:schema:xsd:AttachedDocument-2"
    xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
    xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>AD-001</cbc:ID>
  <cac:Attachment>
    <cac:ExternalReference>
      <cbc:MimeCode>text/xml</cbc:MimeCode>
      <cbc:Description><![CDATA[` + sampleInvoiceXML + `]]></cbc:Description>
    </cac:ExternalReference>
  </cac:Attachment>
</AttachedDocument>`
