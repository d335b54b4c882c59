package dgidb

// GraphQL documents sent to the DGIdb v5 API. Field selections mirror the
// flattened row shapes each query method produces.

const queryDrugs = `query getDrugs($names: [String!], $immunotherapy: Boolean, $antiNeoplastic: Boolean) {
  drugs(names: $names, immunotherapy: $immunotherapy, antiNeoplastic: $antiNeoplastic) {
    nodes {
      name
      conceptId
      drugAliases {
        alias
      }
      drugAttributes {
        name
        value
      }
      antiNeoplastic
      immunotherapy
      approved
      drugApprovalRatings {
        rating
        source {
          sourceDbName
        }
      }
      drugApplications {
        appNo
      }
    }
  }
}`

const queryGenes = `query getGenes($names: [String!]) {
  genes(names: $names) {
    nodes {
      name
      conceptId
      geneAliases {
        alias
      }
      geneAttributes {
        name
        value
      }
    }
  }
}`

const queryInteractionsByGenes = `query getInteractionsByGenes($names: [String!], $immunotherapy: Boolean, $antiNeoplastic: Boolean, $sourceDbName: String, $pmid: Int, $interactionType: String, $approved: Boolean) {
  genes(names: $names) {
    nodes {
      name
      longName
      interactions(immunotherapy: $immunotherapy, antiNeoplastic: $antiNeoplastic, sourceDbName: $sourceDbName, pmid: $pmid, interactionType: $interactionType, approved: $approved) {
        drug {
          name
          approved
        }
        interactionScore
        interactionAttributes {
          name
          value
        }
        interactionClaims {
          source {
            sourceDbName
          }
          publications {
            pmid
          }
        }
      }
    }
  }
}`

const queryInteractionsByDrugs = `query getInteractionsByDrugs($names: [String!], $immunotherapy: Boolean, $antiNeoplastic: Boolean, $sourceDbName: String, $pmid: Int, $interactionType: String, $approved: Boolean) {
  drugs(names: $names, immunotherapy: $immunotherapy, antiNeoplastic: $antiNeoplastic, approved: $approved) {
    nodes {
      name
      approved
      interactions(sourceDbName: $sourceDbName, pmid: $pmid, interactionType: $interactionType) {
        gene {
          name
        }
        interactionScore
        interactionAttributes {
          name
          value
        }
        interactionClaims {
          source {
            sourceDbName
          }
          publications {
            pmid
          }
        }
      }
    }
  }
}`

const queryGeneCategories = `query getGeneCategories($names: [String!]) {
  genes(names: $names) {
    nodes {
      name
      longName
      geneCategoriesWithSources {
        name
        sourceNames
      }
    }
  }
}`

const querySources = `query getSources($sourceType: SourceTypeFilter) {
  sources(sourceType: $sourceType) {
    nodes {
      fullName
      sourceDbName
      sourceDbVersion
      drugClaimsCount
      geneClaimsCount
      interactionClaimsCount
    }
  }
}`

const queryGeneList = `query getAllGenes {
  genes {
    nodes {
      name
      conceptId
    }
  }
}`

const queryDrugList = `query getAllDrugs {
  drugs {
    nodes {
      name
      conceptId
    }
  }
}`

const queryDrugApplications = `query getDrugApplications($names: [String!]) {
  drugs(names: $names) {
    nodes {
      name
      drugApplications {
        appNo
      }
    }
  }
}`
