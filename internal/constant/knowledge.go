package constant

// BuiltinKnowledgeDocument seeds the vector store when no knowledge file is
// available on disk. It carries the core product catalog so retrieval keeps
// working in a fresh deployment.
const BuiltinKnowledgeDocument = `
## PALMS™ Warehouse Management System

PALMS™ is a comprehensive warehouse management system (WMS) that helps businesses
optimize their warehouse operations with industry-leading accuracy and speed.

## Key Features

- Real-time inventory tracking with 99.9% accuracy
- Automated order processing and intelligent task queuing
- AI-driven space optimization delivering up to 60% better storage utilization
- Mobile picking and barcode/RFID scanning on any Android or iOS device
- Advanced analytics and business intelligence reporting
- Multi-warehouse management with centralized control
- ERP integration with SAP, Oracle, Microsoft Dynamics and 50+ other platforms

## Proven Results

- 40% faster picking operations
- 60% improvement in space utilization
- 45% reduction in picking errors
- 30% increase in overall warehouse throughput
- ROI typically achieved within 6 to 12 months
- 99% successful go-lives within 4 to 8 weeks

## Product Suite

- PALMS™ WMS: core warehouse management for growing operations
- PALMS™ 3PL: third-party logistics with multi-client management and automated billing
- PALMS™ Enterprise: large-scale operations with advanced customization
- PALMS™ Mobile: mobile operations, offline capability and handheld scanning
- PALMS™ Analytics: dashboards, KPIs and operational reporting

## Industries Served

Manufacturing, retail and e-commerce, 3PL and logistics, cold storage,
automotive, electronics and pharmaceuticals. Industry-specific workflows cover
compliance tracking, lot and batch control and full traceability.

## Deployment and Support

Cloud, on-premise or hybrid deployment. 24/7 technical support.
Implementation typically completes in 4 to 8 weeks.

## Contact

Sales inquiries: sales@onpalms.com or +91 79755 52867.
`
